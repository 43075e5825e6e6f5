package gamedata

// ChoiceDef defines one player choice out of a dialogue node. Next names
// another node in the same character's dialogue, or the reserved value "end".
type ChoiceDef struct {
	Text string `json:"text"` // Button label
	Next string `json:"next"` // Target node name or "end"
}

// DialogueNodeDef defines one conversational state loaded from JSON.
type DialogueNodeDef struct {
	Text    string      `json:"text"`              // Line spoken by the character
	Choices []ChoiceDef `json:"choices,omitempty"` // Absent on terminal nodes
}

// CharacterDef defines an NPC loaded from characters.json.
type CharacterDef struct {
	ID       string                     `json:"id"`              // Unique identifier (e.g., "dockmaster")
	Name     string                     `json:"name"`            // Display name
	Icon     string                     `json:"icon"`            // Single character for rendering
	Color    string                     `json:"color,omitempty"` // Hex color code (e.g., "#FFD700")
	Dialogue map[string]DialogueNodeDef `json:"dialogue"`        // Node name -> node; must contain "start"
}

// IconRune returns the icon as a rune for rendering.
func (c *CharacterDef) IconRune() rune {
	return firstRune(c.Icon)
}

// LocationDef defines a map location loaded from locations.json.
type LocationDef struct {
	ID          string            `json:"id"`          // Unique identifier (e.g., "docking-bay")
	Name        string            `json:"name"`        // Display name
	Description string            `json:"description"` // Narrative text shown while here
	Glyph       string            `json:"glyph"`       // Single character for the map window
	Color       string            `json:"color,omitempty"`
	X           int               `json:"x"` // Grid coordinates, unique per location
	Y           int               `json:"y"`
	Connections map[string]string `json:"connections,omitempty"` // Direction name -> location id
	Characters  []string          `json:"characters,omitempty"`  // Character ids present here
}

// GlyphRune returns the map glyph as a rune for rendering.
func (l *LocationDef) GlyphRune() rune {
	return firstRune(l.Glyph)
}

// StatDef is one named gauge in the player's stat block. Stats are stored as
// an ordered list so the display order is part of the data.
type StatDef struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// PlayerDef defines the starting player record loaded from player.json.
type PlayerDef struct {
	Name          string    `json:"name"`
	Stats         []StatDef `json:"stats"`
	Level         int       `json:"level"`
	XP            int       `json:"xp"`
	Credits       int       `json:"credits"`
	StatusEffects []string  `json:"statusEffects,omitempty"`
	Location      string    `json:"location"` // Starting location id
}

// LocationsFile represents the structure of locations.json.
type LocationsFile struct {
	Locations []LocationDef `json:"locations"`
}

// CharactersFile represents the structure of characters.json.
type CharactersFile struct {
	Characters []CharacterDef `json:"characters"`
}

// LoadLocations loads location definitions from the embedded locations.json file.
func LoadLocations() ([]LocationDef, error) {
	file, err := Load[LocationsFile]("locations.json")
	if err != nil {
		return nil, err
	}
	return file.Locations, nil
}

// LoadCharacters loads character definitions from the embedded characters.json file.
func LoadCharacters() ([]CharacterDef, error) {
	file, err := Load[CharactersFile]("characters.json")
	if err != nil {
		return nil, err
	}
	return file.Characters, nil
}

// LoadPlayer loads the starting player record from the embedded player.json file.
func LoadPlayer() (PlayerDef, error) {
	return Load[PlayerDef]("player.json")
}

// firstRune returns the first rune of s, or '?' if s is empty.
func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return '?'
}

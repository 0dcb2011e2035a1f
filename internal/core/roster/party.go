package roster

// Party colours used by the site theme
const (
	ColourRed    = "red"
	ColourBlue   = "blue"
	ColourGreen  = "green"
	ColourGrey   = "grey"
	ColourOrange = "orange"
	ColourPurple = "purple"
)

var partyColours = map[string]string{
	"ALP":  ColourRed,
	"LIB":  ColourBlue,
	"LNP":  ColourBlue,
	"CLP":  ColourBlue,
	"NPA":  ColourGreen,
	"NP":   ColourGreen,
	"Nats": ColourGreen,
	"NCP":  ColourGreen,
	"GRN":  ColourGreen,
	"IND":  ColourGrey,
	"PHON": ColourOrange,
	"UAP":  ColourOrange,
	"PUP":  ColourOrange,
	"AD":   ColourPurple,
}

// PartyColour returns the theme colour for a party code, or "" if unknown.
// Codes are matched exactly as the tables spell them
func PartyColour(code string) string { return partyColours[code] }

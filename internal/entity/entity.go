// Package entity holds the static named HTML entity table for the final
// cleanup pass. The Normalizer already ran a broad best-effort decode;
// this table is the authoritative second phase for entities that appear
// (or reappear) later in the pipeline. Unknown entities are passed
// through literally — that is policy, not an error.
package entity

// Lookup resolves an entity name (without & and ;) to its display string.
func Lookup(name string) (string, bool) {
	v, ok := entities[name]
	return v, ok
}

// entities maps common named HTML entities to their characters.
var entities = map[string]string{
	"amp":    "&",
	"lt":     "<",
	"gt":     ">",
	"quot":   `"`,
	"apos":   "'",
	"nbsp":   " ",
	"ensp":   " ",
	"emsp":   " ",
	"thinsp": " ",
	"copy":   "©",
	"reg":    "®",
	"trade":  "™",
	"sect":   "§",
	"para":   "¶",
	"middot": "·",
	"bull":   "•",
	"hellip": "…",
	"prime":  "′",
	"Prime":  "″",
	"ndash":  "–",
	"mdash":  "—",
	"lsquo":  "‘",
	"rsquo":  "’",
	"ldquo":  "“",
	"rdquo":  "”",
	"laquo":  "«",
	"raquo":  "»",
	"times":  "×",
	"divide": "÷",
	"plusmn": "±",
	"minus":  "−",
	"frac12": "½",
	"frac14": "¼",
	"frac34": "¾",
	"sup1":   "¹",
	"sup2":   "²",
	"sup3":   "³",
	"deg":    "°",
	"micro":  "µ",
	"cent":   "¢",
	"pound":  "£",
	"yen":    "¥",
	"euro":   "€",
	"curren": "¤",
	"iexcl":  "¡",
	"iquest": "¿",
	"szlig":  "ß",
	"agrave": "à",
	"aacute": "á",
	"eacute": "é",
	"egrave": "è",
	"iacute": "í",
	"oacute": "ó",
	"uacute": "ú",
	"ntilde": "ñ",
	"ccedil": "ç",
	"ouml":   "ö",
	"uuml":   "ü",
	"auml":   "ä",
	"alpha":  "α",
	"beta":   "β",
	"gamma":  "γ",
	"delta":  "δ",
	"pi":     "π",
	"sigma":  "σ",
	"omega":  "ω",
	"infin":  "∞",
	"sum":    "∑",
	"prod":   "∏",
	"radic":  "√",
	"int":    "∫",
	"asymp":  "≈",
	"ne":     "≠",
	"le":     "≤",
	"ge":     "≥",
	"larr":   "←",
	"uarr":   "↑",
	"rarr":   "→",
	"darr":   "↓",
	"harr":   "↔",
	"dagger": "†",
	"Dagger": "‡",
	"permil": "‰",
	"lsaquo": "‹",
	"rsaquo": "›",
	"oline":  "‾",
	"spades": "♠",
	"clubs":  "♣",
	"hearts": "♥",
	"diams":  "♦",
}

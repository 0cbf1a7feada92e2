// Package emoji holds the static emoji shortcode table.
// The table is built once and never mutated; sharing it by reference
// across goroutines needs no locking.
package emoji

// Lookup resolves a shortcode name (without the surrounding colons) to
// its Unicode emoji. The second return is false for unknown shortcodes;
// callers keep the literal source text in that case.
func Lookup(name string) (string, bool) {
	e, ok := shortcodes[name]
	return e, ok
}

// shortcodes maps GitHub-style shortcode names to emoji.
var shortcodes = map[string]string{
	"+1":                           "👍",
	"-1":                           "👎",
	"100":                          "💯",
	"angry":                        "😠",
	"anguished":                    "😧",
	"arrow_down":                   "⬇️",
	"arrow_left":                   "⬅️",
	"arrow_right":                  "➡️",
	"arrow_up":                     "⬆️",
	"art":                          "🎨",
	"astonished":                   "😲",
	"blue_heart":                   "💙",
	"blush":                        "😊",
	"boom":                         "💥",
	"bow":                          "🙇",
	"broken_heart":                 "💔",
	"bug":                          "🐛",
	"bulb":                         "💡",
	"calendar":                     "📆",
	"chart_with_upwards_trend":     "📈",
	"checkered_flag":               "🏁",
	"clap":                         "👏",
	"cloud":                        "☁️",
	"cold_sweat":                   "😰",
	"confounded":                   "😖",
	"confused":                     "😕",
	"construction":                 "🚧",
	"cool":                         "🆒",
	"cry":                          "😢",
	"crying_cat_face":              "😿",
	"dart":                         "🎯",
	"disappointed":                 "😞",
	"dizzy":                        "💫",
	"dizzy_face":                   "😵",
	"dog":                          "🐶",
	"ear":                          "👂",
	"exclamation":                  "❗",
	"expressionless":               "😑",
	"eyes":                         "👀",
	"fearful":                      "😨",
	"fire":                         "🔥",
	"fist":                         "✊",
	"flushed":                      "😳",
	"frowning":                     "😦",
	"gem":                          "💎",
	"gift":                         "🎁",
	"grimacing":                    "😬",
	"grin":                         "😁",
	"grinning":                     "😀",
	"hammer":                       "🔨",
	"hand":                         "✋",
	"handshake":                    "🤝",
	"heart":                        "❤️",
	"heart_eyes":                   "😍",
	"heavy_check_mark":             "✔️",
	"heavy_multiplication_x":       "✖️",
	"hourglass":                    "⌛",
	"hushed":                       "😯",
	"imp":                          "👿",
	"innocent":                     "😇",
	"joy":                          "😂",
	"key":                          "🔑",
	"kiss":                         "💋",
	"kissing_heart":                "😘",
	"laughing":                     "😆",
	"link":                         "🔗",
	"lock":                         "🔒",
	"loudspeaker":                  "📢",
	"mag":                          "🔍",
	"memo":                         "📝",
	"metal":                        "🤘",
	"moneybag":                     "💰",
	"muscle":                       "💪",
	"neutral_face":                 "😐",
	"no_entry":                     "⛔",
	"nose":                         "👃",
	"ok":                           "🆗",
	"ok_hand":                      "👌",
	"open_mouth":                   "😮",
	"package":                      "📦",
	"page_facing_up":               "📄",
	"pencil2":                      "✏️",
	"pensive":                      "😔",
	"persevere":                    "😣",
	"point_down":                   "👇",
	"point_left":                   "👈",
	"point_right":                  "👉",
	"point_up":                     "☝️",
	"pray":                         "🙏",
	"purple_heart":                 "💜",
	"question":                     "❓",
	"rage":                         "😡",
	"raised_hands":                 "🙌",
	"relaxed":                      "☺️",
	"relieved":                     "😌",
	"rocket":                       "🚀",
	"rotating_light":               "🚨",
	"satisfied":                    "😆",
	"scream":                       "😱",
	"scream_cat":                   "🙀",
	"see_no_evil":                  "🙈",
	"shrug":                        "🤷",
	"skull":                        "💀",
	"sleeping":                     "😴",
	"sleepy":                       "😪",
	"smile":                        "😄",
	"smiley":                       "😃",
	"smiling_imp":                  "😈",
	"smirk":                        "😏",
	"sob":                          "😭",
	"sparkles":                     "✨",
	"star":                         "⭐",
	"star2":                        "🌟",
	"stuck_out_tongue":             "😛",
	"stuck_out_tongue_closed_eyes": "😝",
	"stuck_out_tongue_winking_eye": "😜",
	"sunglasses":                   "😎",
	"sunny":                        "☀️",
	"sweat":                        "😓",
	"sweat_smile":                  "😅",
	"tada":                         "🎉",
	"thinking":                     "🤔",
	"thumbsdown":                   "👎",
	"thumbsup":                     "👍",
	"tired_face":                   "😫",
	"tongue":                       "👅",
	"triumph":                      "😤",
	"trophy":                       "🏆",
	"unamused":                     "😒",
	"unlock":                       "🔓",
	"up":                           "🆙",
	"v":                            "✌️",
	"warning":                      "⚠️",
	"wave":                         "👋",
	"weary":                        "😩",
	"white_check_mark":             "✅",
	"wink":                         "😉",
	"worried":                      "😟",
	"wrench":                       "🔧",
	"x":                            "❌",
	"yum":                          "😋",
	"zap":                          "⚡",
	"zzz":                          "💤",
}

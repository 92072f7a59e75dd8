package tokenize

// britishToAmerican maps British spellings to the American forms used as
// lexicon keys. Kept conservative — only unambiguous spelling variants,
// no vocabulary substitutions (a "lorry" is not a "truck" here).
var britishToAmerican = map[string]string{
	// -our / -or
	"behaviour":  "behavior",
	"behaviours": "behaviors",
	"colour":     "color",
	"colours":    "colors",
	"coloured":   "colored",
	"favour":     "favor",
	"favours":    "favors",
	"favourite":  "favorite",
	"favourites": "favorites",
	"flavour":    "flavor",
	"flavours":   "flavors",
	"honour":     "honor",
	"honours":    "honors",
	"humour":     "humor",
	"labour":     "labor",
	"neighbour":  "neighbor",
	"neighbours": "neighbors",
	"rumour":     "rumor",
	"rumours":    "rumors",
	"saviour":    "savior",
	"savour":     "savor",
	// -ise / -ize
	"analyse":    "analyze",
	"analysed":   "analyzed",
	"apologise":  "apologize",
	"apologised": "apologized",
	"criticise":  "criticize",
	"criticised": "criticized",
	"memorise":   "memorize",
	"memorised":  "memorized",
	"organise":   "organize",
	"organised":  "organized",
	"realise":    "realize",
	"realised":   "realized",
	"realising":  "realizing",
	"recognise":  "recognize",
	"recognised": "recognized",
	"summarise":  "summarize",
	"summarised": "summarized",
	// -re / -er
	"centre":  "center",
	"centres": "centers",
	"fibre":   "fiber",
	"litre":   "liter",
	"litres":  "liters",
	"metre":   "meter",
	"metres":  "meters",
	"theatre": "theater",
	// -ogue / -og
	"catalogue": "catalog",
	"dialogue":  "dialog",
	// doubled consonants
	"cancelled":  "canceled",
	"counsellor": "counselor",
	"jewellery":  "jewelry",
	"labelled":   "labeled",
	"modelled":   "modeled",
	"travelled":  "traveled",
	"traveller":  "traveler",
	"travelling": "traveling",
	// -ence / -ense and other one-offs
	"defence":   "defense",
	"licence":   "license",
	"offence":   "offense",
	"pretence":  "pretense",
	"practise":  "practice",
	"practised": "practiced",
	"grey":      "gray",
	"mould":     "mold",
	"plough":    "plow",
	"programme": "program",
	"tyre":      "tire",
	"whilst":    "while",
}

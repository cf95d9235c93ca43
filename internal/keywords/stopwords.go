package keywords

// StopWords contains common English words excluded from keyword extraction.
// Membership is curated domain data, not an algorithmic decision.
var StopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"be": {}, "been": {}, "being": {}, "am": {}, "do": {}, "does": {}, "did": {},
	"have": {}, "has": {}, "had": {}, "will": {}, "would": {}, "could": {},
	"should": {}, "may": {}, "might": {}, "can": {}, "shall": {}, "must": {},
	"and": {}, "or": {}, "but": {}, "if": {}, "then": {}, "than": {}, "so": {},
	"as": {}, "at": {}, "by": {}, "for": {}, "from": {}, "in": {}, "into": {},
	"of": {}, "on": {}, "to": {}, "with": {}, "about": {}, "up": {}, "out": {},
	"over": {}, "under": {}, "through": {}, "during": {}, "per": {}, "via": {},
	"it": {}, "its": {}, "this": {}, "that": {}, "these": {}, "those": {},
	"what": {}, "which": {}, "who": {}, "whom": {}, "how": {}, "when": {},
	"where": {}, "why": {}, "you": {}, "your": {}, "yours": {}, "me": {},
	"my": {}, "mine": {}, "we": {}, "our": {}, "ours": {}, "they": {},
	"their": {}, "them": {}, "he": {}, "she": {}, "her": {}, "him": {},
	"his": {}, "us": {}, "i": {}, "not": {}, "no": {}, "nor": {}, "also": {},
	"all": {}, "any": {}, "each": {}, "such": {}, "own": {}, "same": {},
	"other": {}, "more": {}, "most": {}, "some": {}, "both": {}, "etc": {},
	"using": {}, "used": {}, "use": {}, "including": {}, "across": {},
	"within": {}, "while": {}, "like": {}, "new": {}, "well": {},
}

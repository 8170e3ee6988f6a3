package generator

// DefaultVocabulary is the built-in challenge word list: common short
// English words weighted toward home-row friendly shapes.
var DefaultVocabulary = []string{
	"the", "be", "to", "of", "and", "a", "in", "that", "have", "it",
	"for", "not", "on", "with", "he", "as", "you", "do", "at", "this",
	"but", "his", "by", "from", "they", "we", "say", "her", "she", "or",
	"an", "will", "my", "one", "all", "would", "there", "their", "what", "so",
	"up", "out", "if", "about", "who", "get", "which", "go", "me", "when",
	"make", "can", "like", "time", "no", "just", "him", "know", "take", "people",
	"into", "year", "your", "good", "some", "could", "them", "see", "other", "than",
	"then", "now", "look", "only", "come", "its", "over", "think", "also", "back",
	"after", "use", "two", "how", "our", "work", "first", "well", "way", "even",
	"new", "want", "because", "any", "these", "give", "day", "most", "us", "is",
	"are", "was", "were", "been", "has", "had", "did", "said", "each", "more",
	"down", "long", "little", "very", "still", "own", "under", "last", "never", "same",
	"another", "while", "where", "much", "before", "right", "too", "old", "great", "high",
	"small", "large", "next", "early", "young", "few", "public", "bad", "able", "water",
	"word", "call", "find", "place", "made", "live", "again", "point", "world", "house",
	"hand", "part", "life", "tell", "write", "keep", "seem", "help", "talk", "turn",
	"start", "show", "hear", "play", "run", "move", "line", "night", "real", "left",
	"home", "read", "end", "why", "let", "put", "mean", "ask", "need", "try",
	"feel", "leave", "stand", "every", "such", "open", "both", "near", "side", "head",
	"far", "hold", "between", "name", "should", "might", "came", "many", "those", "must",
}

package session

// DefaultNames seeds the display-name pool when no external directory is
// configured or reachable.
var DefaultNames = []string{
	"Mara", "Jonas", "Priya", "Theo", "Lena", "Ezra",
	"Sofia", "Dmitri", "Aiko", "Caleb", "Noor", "Felix",
	"Ingrid", "Marcus", "Yara", "Oscar",
}

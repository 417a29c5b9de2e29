package wordgen

import "strings"

// keyboardWalks lists well-known adjacent-key sequences seen in leaked
// password corpora.
var keyboardWalks = []string{
	"qwerty", "qwertyuiop", "asdfgh", "asdfghjkl",
	"zxcvbn", "zxcvbnm", "123456", "1234567890",
	"qazwsx", "qazxsw", "qweasd", "qweasdzxc",
	"1qaz2wsx", "1qaz2wsx3edc", "zaq1xsw2",
	"password", "passw0rd", "p@ssw0rd",
}

// KeyboardWalks returns the walk table closed under reversal,
// capitalization and upper-casing.
func KeyboardWalks() Set {
	walks := NewSet(keyboardWalks...)
	for _, w := range keyboardWalks {
		walks.Add(reverse(w))
	}
	for _, w := range walks.Sorted() {
		walks.Add(capitalize(w))
	}
	for _, w := range walks.Sorted() {
		walks.Add(strings.ToUpper(w))
	}
	return walks
}

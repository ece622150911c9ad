package explain

// SuggestedTopics are offered to learners who do not know what to ask.
var SuggestedTopics = []string{
	"What is an AND gate?",
	"Explain binary numbers",
	"What is AMCC (Advanced Microcontroller Bus Architecture)?",
	"Differentiate between RAM and ROM",
}

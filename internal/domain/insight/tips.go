package insight

// Tips is the fixed rotation of general financial advice.
var Tips = []string{
	"Follow the 50-30-20 rule: Needs, Wants, Savings.",
	"Avoid impulse buying, wait 24 hours before purchases.",
	"Review subscriptions you rarely use.",
	"Save first, spend later.",
	"Analyze expenses weekly for better control.",
	"Compare prices before buying.",
	"Plan monthly budgets in advance.",
}

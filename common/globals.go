package common

const (
	CategorySync      = "sync"
	CategoryStreaming = "streaming"
	CategoryDownloads = "downloads"
	CategoryPhysical  = "physical"

	BasisRevenue = "revenue"

	ExpenseDescriptionRecouped = "Recouped from earnings"

	EventTypeEarningPosted = "earning.posted"
	EventTypePaymentMade   = "payment.made"

	RoyaltyStatusApplied    = "applied"
	RoyaltyStatusNotApplied = "(Not applied)"
)

// Categories lists every revenue category a royalty split can be configured
// for. Order is the reporting order used in statements.
var Categories = []string{
	CategorySync,
	CategoryStreaming,
	CategoryDownloads,
	CategoryPhysical,
}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

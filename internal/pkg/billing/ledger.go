package billing

// NextBalance computes the leads balance after applying an operation. Leads
// accumulate: new, renewal and upgrade add the plan's included leads on top
// of whatever is left; a downgrade adds nothing because it is not a new
// purchase from the leads perspective. A nil current balance (first-ever
// subscription) counts as zero and the result is never negative.
func NextBalance(current *int64, op OperationType, leadsIncluded int64) int64 {
	balance := int64(0)
	if current != nil && *current > 0 {
		balance = *current
	}

	switch op {
	case OperationNew, OperationRenewal, OperationUpgrade:
		balance += leadsIncluded
	case OperationDowngrade, OperationCancellation:
		// balance unchanged
	}

	if balance < 0 {
		return 0
	}
	return balance
}

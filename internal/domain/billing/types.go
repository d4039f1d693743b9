package billing

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "Pending"
	PaymentPaid     PaymentStatus = "Paid"
	PaymentRefunded PaymentStatus = "Refunded"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return true
	default:
		return false
	}
}

type PaymentMethod string

const (
	MethodCash         PaymentMethod = "Cash"
	MethodCreditCard   PaymentMethod = "Credit Card"
	MethodDebitCard    PaymentMethod = "Debit Card"
	MethodBankTransfer PaymentMethod = "Bank Transfer"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodCash, MethodCreditCard, MethodDebitCard, MethodBankTransfer:
		return true
	default:
		return false
	}
}

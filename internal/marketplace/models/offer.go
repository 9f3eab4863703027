package models

// ============================================================
// Offer Model
// ============================================================

// Offer — отклик исполнителя на заказ.
type Offer struct {
	ID int64
	OfferFields
}

type OfferFields struct {
	OrderID    int64
	ExecutorID int64
}

var offerKeys = []string{"order_id", "executor_id"}

func DecodeOfferFields(data []byte) (OfferFields, error) {
	f, err := parseObject(data, offerKeys)
	if err != nil {
		return OfferFields{}, err
	}

	var o OfferFields
	if o.OrderID, err = f.integer("order_id"); err != nil {
		return OfferFields{}, err
	}
	if o.ExecutorID, err = f.integer("executor_id"); err != nil {
		return OfferFields{}, err
	}
	return o, nil
}

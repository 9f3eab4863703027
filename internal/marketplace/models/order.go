package models

import "marketplace/internal/common/apperr"

// ============================================================
// Order Model
// ============================================================

type Order struct {
	ID int64
	OrderFields
}

// OrderFields — изменяемые поля заказа. Даты уже разобраны.
// CustomerID и ExecutorID ссылаются на User.ID, но БД это не проверяет.
type OrderFields struct {
	Name        string
	Description string
	StartDate   Date
	EndDate     Date
	Address     string
	Price       int64
	CustomerID  int64
	ExecutorID  *int64
}

var orderKeys = []string{
	"name", "description", "start_date", "end_date",
	"address", "price", "customer_id", "executor_id",
}

// Validate проверяет то, что не выражается типами.
func (o OrderFields) Validate() error {
	if o.Price < 0 {
		return apperr.New(apperr.InvalidInput, "field \"price\" must be non-negative")
	}
	if o.StartDate.IsZero() {
		return missing("start_date")
	}
	if o.EndDate.IsZero() {
		return missing("end_date")
	}
	return nil
}

// DecodeOrderFields превращает JSON-объект в OrderFields, разбирая даты MM/DD/YYYY.
// executor_id необязателен и может быть null.
func DecodeOrderFields(data []byte) (OrderFields, error) {
	f, err := parseObject(data, orderKeys)
	if err != nil {
		return OrderFields{}, err
	}

	var o OrderFields
	if o.Name, err = f.str("name"); err != nil {
		return OrderFields{}, err
	}
	if o.Description, err = f.str("description"); err != nil {
		return OrderFields{}, err
	}
	if o.StartDate, err = f.date("start_date"); err != nil {
		return OrderFields{}, err
	}
	if o.EndDate, err = f.date("end_date"); err != nil {
		return OrderFields{}, err
	}
	if o.Address, err = f.str("address"); err != nil {
		return OrderFields{}, err
	}
	if o.Price, err = f.integer("price"); err != nil {
		return OrderFields{}, err
	}
	if o.CustomerID, err = f.integer("customer_id"); err != nil {
		return OrderFields{}, err
	}
	if o.ExecutorID, err = f.optionalInteger("executor_id"); err != nil {
		return OrderFields{}, err
	}
	if err := o.Validate(); err != nil {
		return OrderFields{}, err
	}
	return o, nil
}

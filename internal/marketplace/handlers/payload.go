package handlers

import "marketplace/internal/marketplace/models"

// ============================================================
// Payloads
// ============================================================

type userPayload struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       int64  `json:"age"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
}

// orderPayload отдаёт даты в MM/DD/YYYY, executor_id — null, если не назначен.
type orderPayload struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Address     string `json:"address"`
	Price       int64  `json:"price"`
	CustomerID  int64  `json:"customer_id"`
	ExecutorID  *int64 `json:"executor_id"`
}

type offerPayload struct {
	ID         int64 `json:"id"`
	OrderID    int64 `json:"order_id"`
	ExecutorID int64 `json:"executor_id"`
}

func mapUser(u models.User) userPayload {
	return userPayload{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Age:       u.Age,
		Email:     u.Email,
		Role:      u.Role,
		Phone:     u.Phone,
	}
}

func mapUsers(users []models.User) []userPayload {
	out := make([]userPayload, 0, len(users))
	for _, u := range users {
		out = append(out, mapUser(u))
	}
	return out
}

func mapOrder(o models.Order) orderPayload {
	return orderPayload{
		ID:          o.ID,
		Name:        o.Name,
		Description: o.Description,
		StartDate:   o.StartDate.String(),
		EndDate:     o.EndDate.String(),
		Address:     o.Address,
		Price:       o.Price,
		CustomerID:  o.CustomerID,
		ExecutorID:  o.ExecutorID,
	}
}

func mapOrders(orders []models.Order) []orderPayload {
	out := make([]orderPayload, 0, len(orders))
	for _, o := range orders {
		out = append(out, mapOrder(o))
	}
	return out
}

func mapOffer(o models.Offer) offerPayload {
	return offerPayload{ID: o.ID, OrderID: o.OrderID, ExecutorID: o.ExecutorID}
}

func mapOffers(offers []models.Offer) []offerPayload {
	out := make([]offerPayload, 0, len(offers))
	for _, o := range offers {
		out = append(out, mapOffer(o))
	}
	return out
}

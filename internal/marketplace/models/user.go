package models

// ============================================================
// User Model
// ============================================================

type User struct {
	ID int64
	UserFields
}

// UserFields — изменяемые поля пользователя (всё, кроме id).
type UserFields struct {
	FirstName string
	LastName  string
	Age       int64
	Email     string
	Role      string
	Phone     string
}

var userKeys = []string{"first_name", "last_name", "age", "email", "role", "phone"}

// DecodeUserFields превращает JSON-объект в UserFields. Все поля обязательны.
func DecodeUserFields(data []byte) (UserFields, error) {
	f, err := parseObject(data, userKeys)
	if err != nil {
		return UserFields{}, err
	}

	var u UserFields
	if u.FirstName, err = f.str("first_name"); err != nil {
		return UserFields{}, err
	}
	if u.LastName, err = f.str("last_name"); err != nil {
		return UserFields{}, err
	}
	if u.Age, err = f.integer("age"); err != nil {
		return UserFields{}, err
	}
	if u.Email, err = f.str("email"); err != nil {
		return UserFields{}, err
	}
	if u.Role, err = f.str("role"); err != nil {
		return UserFields{}, err
	}
	if u.Phone, err = f.str("phone"); err != nil {
		return UserFields{}, err
	}
	return u, nil
}

package domain

// Request bodies for the resource endpoints. A zero value means the field
// was absent; defaults are applied by the logic layer.

type UserRequest struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type ProfileRequest struct {
	Name string `json:"name"`
}

type PasswordRequest struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Website  string `json:"website"`
	Username string `json:"username"`
	Password string `json:"password"`
	Category string `json:"category"`
	Notes    string `json:"notes"`
}

type NoteRequest struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Category   string `json:"category"`
	IsFavorite bool   `json:"is_favorite"`
}

type ShoppingListRequest struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ShoppingItemRequest struct {
	ID          int      `json:"id"`
	ListID      int      `json:"listId"`
	Name        string   `json:"name"`
	Quantity    int      `json:"quantity"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	IsCompleted bool     `json:"is_completed"`
}

package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password"`
}

// loginResponse carries the token twice: "token" for API clients and
// "accessToken" for the console front end.
type loginResponse struct {
	Token       string `json:"token"`
	AccessToken string `json:"accessToken"`
	Role        string `json:"role"`
}

type cartLineRequest struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

type orderRequest struct {
	PaymentMethod string            `json:"paymentMethod"`
	Cart          []cartLineRequest `json:"cart"`
}

type orderResponse struct {
	Message      string `json:"message"`
	StockUpdated bool   `json:"stockUpdated"`
}

type exportRequest struct {
	ProductIDs []string `json:"productIds" validate:"required,min=1"`
}

// productResponse documents the product JSON shape for the API docs.
type productResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Image    string  `json:"image"`
}

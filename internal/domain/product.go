package domain

type Product struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

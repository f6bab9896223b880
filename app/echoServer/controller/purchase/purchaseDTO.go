package purchase

type BuyBookReq struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

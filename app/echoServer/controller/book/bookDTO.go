package book

type CreateBookReq struct {
	Title     string   `json:"title" form:"title" validate:"required"`
	Authors   []string `json:"authors" form:"authors" validate:"required,min=1,dive,required"`
	Publisher string   `json:"publisher" form:"publisher" validate:"required"`
	Published string   `json:"published" form:"published" validate:"required,datetime=2006-01-02"`
	Genre     []string `json:"genre" form:"genre" validate:"required,min=1,dive,required"`
	Summary   string   `json:"summary" form:"summary"`
	Price     float64  `json:"price" form:"price" validate:"required,gt=0"`
}

type UpdateBookReq struct {
	Title     *string  `json:"title" form:"title" validate:"omitempty,min=1"`
	Authors   []string `json:"authors" form:"authors" validate:"omitempty,min=1,dive,required"`
	Publisher *string  `json:"publisher" form:"publisher" validate:"omitempty,min=1"`
	Published *string  `json:"published" form:"published" validate:"omitempty,datetime=2006-01-02"`
	Genre     []string `json:"genre" form:"genre" validate:"omitempty,min=1,dive,required"`
	Summary   *string  `json:"summary" form:"summary"`
	Price     *float64 `json:"price" form:"price" validate:"omitempty,gt=0"`
}

type ListBooksQuery struct {
	Limit  int    `query:"limit" validate:"omitempty,min=1"`
	Offset int    `query:"offset" validate:"omitempty,min=0"`
	Genre  string `query:"genre"`
	Author string `query:"author"`
}

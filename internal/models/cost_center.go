package models

type CostCenter struct {
	ID          int64
	Code        string
	Name        string
	Description string
	Active      bool
}

type CreateCostCenterIn struct {
	Code        string
	Name        string
	Description string
}

type DoCreateCostCenterRequest struct {
	Code        string `json:"code" validate:"required,min=2,max=20,nospecial" example:"OPS"`
	Name        string `json:"name" validate:"required,max=120" example:"Operations"`
	Description string `json:"description" validate:"max=255"`
}

func (r DoCreateCostCenterRequest) ToCreateIn() CreateCostCenterIn {
	return CreateCostCenterIn{
		Code:        r.Code,
		Name:        r.Name,
		Description: r.Description,
	}
}

type DoListCostCenterRequest struct {
	ActiveOnly bool `query:"activeOnly"`
}

type CostCenterOut struct {
	Kind        string `json:"kind" example:"costCenter"`
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

func (c CostCenter) ToResponse() CostCenterOut {
	return CostCenterOut{
		Kind:        "costCenter",
		ID:          c.ID,
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
		Active:      c.Active,
	}
}

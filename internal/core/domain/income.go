package domain

import "time"

// Income is a named source of incoming money.
type Income struct {
	Entity[IncomeID]
	name     IncomeName
	colorTag ColorTag
}

type IncomeProps struct {
	Name     string
	ColorTag string
}

type IncomeState struct {
	ID        IncomeID
	Name      IncomeName
	ColorTag  ColorTag
	CreatedAt time.Time
	UpdatedAt time.Time
}

type IncomeUpdate struct {
	Name     *string
	ColorTag *string
}

type IncomeDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ColorTag  string    `json:"colorTag"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func CreateIncome(props IncomeProps) Result[*Income] {
	name := NewIncomeName(props.Name)
	if name.IsFailure() {
		return FailFrom[*Income](name)
	}
	color := NewColorTag(props.ColorTag)
	if color.IsFailure() {
		return FailFrom[*Income](color)
	}
	return Ok(&Income{
		Entity:   newEntity(GenerateIncomeID()),
		name:     name.Value(),
		colorTag: color.Value(),
	})
}

func ReconstituteIncome(state IncomeState) Result[*Income] {
	return Ok(&Income{
		Entity:   restoreEntity(state.ID, state.CreatedAt, state.UpdatedAt),
		name:     state.Name,
		colorTag: state.ColorTag,
	})
}

func (i *Income) Name() IncomeName   { return i.name }
func (i *Income) ColorTag() ColorTag { return i.colorTag }

func (i *Income) Update(u IncomeUpdate) Result[Void] {
	if u.Name != nil {
		r := NewIncomeName(*u.Name)
		if r.IsFailure() {
			return FailFrom[Void](r)
		}
		i.name = r.Value()
	}
	if u.ColorTag != nil {
		r := NewColorTag(*u.ColorTag)
		if r.IsFailure() {
			return FailFrom[Void](r)
		}
		i.colorTag = r.Value()
	}
	i.touch()
	return OkVoid()
}

func (i *Income) Equals(other *Income) bool {
	return other != nil && i.id == other.id
}

func (i *Income) ToDTO() IncomeDTO {
	return IncomeDTO{
		ID:        i.id.Value(),
		Name:      i.name.Value(),
		ColorTag:  i.colorTag.Value(),
		CreatedAt: i.createdAt,
		UpdatedAt: i.updatedAt,
	}
}

func IncomeFromDTO(dto IncomeDTO) Result[*Income] {
	id := NewIncomeID(dto.ID)
	name := NewIncomeName(dto.Name)
	color := NewColorTag(dto.ColorTag)
	if r := Combine(id, name, color); r.IsFailure() {
		return FailFrom[*Income](r)
	}
	return ReconstituteIncome(IncomeState{
		ID:        id.Value(),
		Name:      name.Value(),
		ColorTag:  color.Value(),
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	})
}

package entries

// Kind clasifica el movimiento registrado para un activo.
type Kind string

const (
	KindEntry  Kind = "entry"
	KindExit   Kind = "exit"
	KindDelete Kind = "delete"
)

func (k Kind) Valid() bool {
	switch k {
	case KindEntry, KindExit, KindDelete:
		return true
	}
	return false
}

// Location indica dónde quedó el activo tras el movimiento.
type Location string

const (
	LocationOffice Location = "office"
	LocationClient Location = "client"
)

func (l Location) Valid() bool {
	switch l {
	case LocationOffice, LocationClient:
		return true
	}
	return false
}

// Condition describe el estado físico del activo.
// Es opcional: "" significa que el evento no la informó (eventos legacy).
type Condition string

const (
	ConditionWorking Condition = "working"
	ConditionDamaged Condition = "damaged"
)

func (c Condition) Valid() bool {
	switch c {
	case ConditionWorking, ConditionDamaged, "":
		return true
	}
	return false
}

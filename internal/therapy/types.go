package therapy

// Type identifies one of the Panchakarma therapies offered by the clinic.
type Type string

const (
	Abhyanga     Type = "Abhyanga"
	Shirodhara   Type = "Shirodhara"
	Pizhichil    Type = "Pizhichil"
	KatiVasti    Type = "Kati Vasti"
	Nasya        Type = "Nasya"
	Virechana    Type = "Virechana"
	Consultation Type = "Consultation"
)

// All lists every offered therapy in menu order.
func All() []Type {
	return []Type{Abhyanga, Shirodhara, Pizhichil, KatiVasti, Nasya, Virechana, Consultation}
}

// Valid reports whether t is one of the offered therapies.
func Valid(t Type) bool {
	switch t {
	case Abhyanga, Shirodhara, Pizhichil, KatiVasti, Nasya, Virechana, Consultation:
		return true
	}
	return false
}

package profile

// Profile son los datos del usuario guardados bajo "userData".
type Profile struct {
	Name  string
	Email string
}

const (
	StorageKey = "userData"

	DefaultName  = "Usuario Ejemplo"
	DefaultEmail = "usuario@ejemplo.com"
)

// Default es el perfil que se muestra mientras no se haya guardado ninguno.
func Default() Profile {
	return Profile{Name: DefaultName, Email: DefaultEmail}
}

// View es lo que muestra la pantalla de perfil.
type View struct {
	Profile
	EventCount int
}

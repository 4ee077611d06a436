package captures

import "context"

// Repository persiste la colección completa como una unidad.
//
// LoadAll nunca falla: si no hay nada guardado, o lo guardado no tiene la forma
// esperada, devuelve una colección vacía. SaveAll reemplaza todo lo anterior.
// No hay locking: el Service serializa los read-modify-write.
type Repository interface {
	LoadAll(ctx context.Context) Collection
	SaveAll(ctx context.Context, c Collection) error
}

package captures

// Collection es la lista ordenada de capturas; se persiste como un único blob.
// Las operaciones devuelven una colección nueva y no tocan la original.
type Collection []Capture

func (c Collection) IndexOf(id string) int {
	for i := range c {
		if c[i].ID == id {
			return i
		}
	}
	return -1
}

func (c Collection) Find(id string) (Capture, bool) {
	i := c.IndexOf(id)
	if i < 0 {
		return Capture{}, false
	}
	return c[i].clone(), true
}

// Append agrega al final.
func (c Collection) Append(e Capture) Collection {
	out := make(Collection, 0, len(c)+1)
	out = append(out, c...)
	return append(out, e)
}

// Replace reemplaza in situ el registro con el mismo ID, conservando la posición.
func (c Collection) Replace(e Capture) (Collection, bool) {
	i := c.IndexOf(e.ID)
	if i < 0 {
		return c, false
	}
	out := make(Collection, len(c))
	copy(out, c)
	out[i] = e
	return out, true
}

// Remove quita el registro con ese ID, conservando el orden del resto.
func (c Collection) Remove(id string) (Collection, bool) {
	i := c.IndexOf(id)
	if i < 0 {
		return c, false
	}
	out := make(Collection, 0, len(c)-1)
	out = append(out, c[:i]...)
	return append(out, c[i+1:]...), true
}

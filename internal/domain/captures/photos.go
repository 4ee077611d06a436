package captures

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// EncodePhoto convierte una imagen en data URL embebible.
// Se detecta el tipo por contenido; lo que no sea image/* se rechaza.
func EncodePhoto(content []byte) (string, error) {
	if len(content) == 0 {
		return "", fmt.Errorf("%w: empty file", ErrUnsupportedPhoto)
	}

	mt := mimetype.Detect(content)
	mime := mt.String()
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPhoto, mime)
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(content), nil
}

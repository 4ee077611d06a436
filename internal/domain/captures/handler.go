package captures

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"fauna-field-log/internal/domain/captures/details"
	"fauna-field-log/internal/ports/geo"
)

// MaxPhotoBytes limita el tamaño de cada foto subida.
const MaxPhotoBytes = 10 << 20

func RegisterRoutes(r chi.Router, svc *Service) {
	// Colección guardada
	r.Route("/captures", func(cr chi.Router) {
		cr.Get("/", listCapturesHandler(svc))
		cr.Get("/{id}", getCaptureHandler(svc))
		cr.Delete("/{id}", deleteCaptureHandler(svc))
	})

	// Formularios de captura (nuevo / edición)
	r.Route("/capture-forms", func(fr chi.Router) {
		fr.Post("/", openFormHandler(svc))
		fr.Get("/{formID}", getFormHandler(svc))
		fr.Patch("/{formID}", patchFormHandler(svc))
		fr.Delete("/{formID}", closeFormHandler(svc))

		fr.Post("/{formID}/position", positionHandler(svc))
		fr.Post("/{formID}/photos", attachPhotoHandler(svc))
		fr.Delete("/{formID}/photos/{index}", removePhotoHandler(svc))
		fr.Post("/{formID}/submit", submitFormHandler(svc))
	})
}

type attackPayload struct {
	AnimalType         string `json:"animal_type"`
	Outcome            string `json:"outcome" enums:"muerto,herido"`
	PreventiveMeasures string `json:"preventive_measures"`
}

type captureResponse struct {
	ID           string         `json:"id"`
	Date         string         `json:"date"`
	Time         string         `json:"time"`
	Latitude     float64        `json:"latitude"`
	Longitude    float64        `json:"longitude"`
	Located      bool           `json:"located"`
	Place        string         `json:"place"`
	Observer     string         `json:"observer"`
	Species      string         `json:"species"`
	Kind         string         `json:"kind" enums:"avistamiento,rastro,ataque"`
	Description  string         `json:"description"`
	Photos       []string       `json:"photos"`
	Attack       *attackPayload `json:"attack,omitempty"`
	Synchronized bool           `json:"synchronized"`
}

type openFormRequest struct {
	// Vacío = formulario nuevo. Con ID = edición de ese registro.
	EventID string `json:"event_id"`
}

type formResponse struct {
	ID       string `json:"id"`
	Mode     string `json:"mode" enums:"new,edit"`
	TargetID string `json:"target_id,omitempty"`

	Date string `json:"date"`
	Time string `json:"time"`

	// null mientras no haya posición.
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Locating  bool     `json:"locating"`

	Place       string         `json:"place"`
	Observer    string         `json:"observer"`
	Species     string         `json:"species"`
	Kind        string         `json:"kind"`
	Description string         `json:"description"`
	Attack      *attackPayload `json:"attack,omitempty"`

	Photos         []string `json:"photos"`
	CanAttachPhoto bool     `json:"can_attach_photo"`
	MaxPhotos      int      `json:"max_photos"`
}

type patchFormRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Place       *string        `json:"place"`
	Description *string        `json:"description"`
	Species     *string        `json:"species"`
	Observer    *string        `json:"observer"`
	Kind        *string        `json:"kind"`
	Attack      *attackPayload `json:"attack"`
	ClearAttack bool           `json:"clear_attack"`
}

type positionRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// listCapturesHandler godoc
// @Summary      Listar capturas
// @Description  Devuelve la colección completa en el orden en que fue registrada.
// @Tags         captures
// @Produce      json
// @Success      200  {array}  captureResponse
// @Router       /captures [get]
func listCapturesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := svc.List(r.Context())

		out := make([]captureResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toCaptureResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getCaptureHandler godoc
// @Summary      Obtener captura
// @Tags         captures
// @Produce      json
// @Param        id   path      string  true  "ID de la captura"
// @Success      200  {object}  captureResponse
// @Failure      404  {string}  string
// @Router       /captures/{id} [get]
func getCaptureHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toCaptureResponse(c))
	}
}

// deleteCaptureHandler godoc
// @Summary      Eliminar captura
// @Description  Requiere confirm=true; sin confirmación no se borra nada.
// @Tags         captures
// @Param        id       path   string  true  "ID de la captura"
// @Param        confirm  query  bool    true  "Confirmación explícita"
// @Success      204
// @Failure      404  {string}  string
// @Failure      428  {string}  string
// @Router       /captures/{id} [delete]
func deleteCaptureHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		confirmed := false
		if v := r.URL.Query().Get("confirm"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				http.Error(w, "confirm must be a boolean", http.StatusBadRequest)
				return
			}
			confirmed = b
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "id"), confirmed); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// openFormHandler godoc
// @Summary      Abrir formulario de captura
// @Description  Sin event_id abre un formulario nuevo y pide la posición actual. Con event_id abre la edición de ese registro.
// @Tags         capture-forms
// @Accept       json
// @Produce      json
// @Param        body  body      openFormRequest  false  "Registro a editar"
// @Success      201   {object}  formResponse
// @Failure      404   {string}  string
// @Router       /capture-forms [post]
func openFormHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req openFormRequest
		if err := decodeOptionalJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var (
			f   *Form
			err error
		)
		if strings.TrimSpace(req.EventID) == "" {
			f, err = svc.OpenNew(r.Context())
		} else {
			f, err = svc.OpenEdit(r.Context(), req.EventID)
		}
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toFormResponse(f.State()))
	}
}

// getFormHandler godoc
// @Summary      Estado del formulario
// @Tags         capture-forms
// @Produce      json
// @Param        formID  path      string  true  "ID del formulario"
// @Success      200     {object}  formResponse
// @Failure      404     {string}  string
// @Router       /capture-forms/{formID} [get]
func getFormHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := svc.Form(chi.URLParam(r, "formID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toFormResponse(f.State()))
	}
}

// patchFormHandler godoc
// @Summary      Editar campos del formulario
// @Tags         capture-forms
// @Accept       json
// @Produce      json
// @Param        formID  path      string            true  "ID del formulario"
// @Param        body    body      patchFormRequest  true  "Campos a cambiar"
// @Success      200     {object}  formResponse
// @Failure      400     {string}  string
// @Failure      404     {string}  string
// @Router       /capture-forms/{formID} [patch]
func patchFormHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := svc.Form(chi.URLParam(r, "formID"))
		if err != nil {
			writeError(w, err)
			return
		}

		var req patchFormRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := FormFields{
			Place:       req.Place,
			Description: req.Description,
			Species:     req.Species,
			Observer:    req.Observer,
			ClearAttack: req.ClearAttack,
		}
		if req.Kind != nil {
			k, err := ParseKind(*req.Kind)
			if err != nil {
				writeError(w, err)
				return
			}
			in.Kind = &k
		}
		if req.Attack != nil {
			in.Attack = &details.Attack{
				AnimalType:         req.Attack.AnimalType,
				Outcome:            details.Outcome(req.Attack.Outcome),
				PreventiveMeasures: req.Attack.PreventiveMeasures,
			}
		}

		if err := f.Apply(in); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toFormResponse(f.State()))
	}
}

// closeFormHandler godoc
// @Summary      Cerrar formulario
// @Description  Descarta el formulario; respuestas de posición pendientes se ignoran.
// @Tags         capture-forms
// @Param        formID  path  string  true  "ID del formulario"
// @Success      204
// @Failure      404  {string}  string
// @Router       /capture-forms/{formID} [delete]
func closeFormHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.CloseForm(chi.URLParam(r, "formID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// positionHandler godoc
// @Summary      Actualizar posición
// @Description  Con latitude/longitude aplica la lectura del dispositivo. Sin body pide una nueva posición en segundo plano (202).
// @Tags         capture-forms
// @Accept       json
// @Produce      json
// @Param        formID  path      string           true   "ID del formulario"
// @Param        body    body      positionRequest  false  "Lectura del dispositivo"
// @Success      200     {object}  formResponse
// @Success      202     {object}  formResponse
// @Failure      400     {string}  string
// @Router       /capture-forms/{formID}/position [post]
func positionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := svc.Form(chi.URLParam(r, "formID"))
		if err != nil {
			writeError(w, err)
			return
		}

		var req positionRequest
		if err := decodeOptionalJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if req.Latitude == nil && req.Longitude == nil {
			if err := svc.RefreshPosition(f); err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusAccepted, toFormResponse(f.State()))
			return
		}

		if req.Latitude == nil || req.Longitude == nil ||
			*req.Latitude < -90 || *req.Latitude > 90 || *req.Longitude < -180 || *req.Longitude > 180 {
			http.Error(w, "latitude and longitude must be a valid pair", http.StatusBadRequest)
			return
		}
		if err := f.ReportPosition(geo.Position{Latitude: *req.Latitude, Longitude: *req.Longitude}); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toFormResponse(f.State()))
	}
}

// attachPhotoHandler godoc
// @Summary      Adjuntar foto
// @Description  Acepta el archivo como body crudo (image/*) o como multipart en el campo "photo". Máximo 3 por formulario.
// @Tags         capture-forms
// @Accept       image/jpeg,image/png,multipart/form-data
// @Produce      json
// @Param        formID  path      string  true  "ID del formulario"
// @Success      200     {object}  formResponse
// @Failure      409     {string}  string
// @Failure      413     {string}  string
// @Failure      415     {string}  string
// @Router       /capture-forms/{formID}/photos [post]
func attachPhotoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := svc.Form(chi.URLParam(r, "formID"))
		if err != nil {
			writeError(w, err)
			return
		}

		content, err := readPhoto(w, r)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				http.Error(w, "photo too large", http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := f.AttachPhoto(content); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toFormResponse(f.State()))
	}
}

// removePhotoHandler godoc
// @Summary      Quitar foto
// @Tags         capture-forms
// @Produce      json
// @Param        formID  path      string   true  "ID del formulario"
// @Param        index   path      integer  true  "Posición de la foto (desde 0)"
// @Success      200     {object}  formResponse
// @Failure      400     {string}  string
// @Router       /capture-forms/{formID}/photos/{index} [delete]
func removePhotoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := svc.Form(chi.URLParam(r, "formID"))
		if err != nil {
			writeError(w, err)
			return
		}

		idx, err := strconv.Atoi(chi.URLParam(r, "index"))
		if err != nil {
			http.Error(w, "index must be an integer", http.StatusBadRequest)
			return
		}
		if err := f.RemovePhoto(idx); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toFormResponse(f.State()))
	}
}

// submitFormHandler godoc
// @Summary      Guardar formulario
// @Description  Valida lugar, descripción y al menos una foto. Modo nuevo agrega al final (201); edición reemplaza en su lugar (200). El formulario queda cerrado.
// @Tags         capture-forms
// @Produce      json
// @Param        formID  path      string  true  "ID del formulario"
// @Success      200     {object}  captureResponse
// @Success      201     {object}  captureResponse
// @Failure      400     {string}  string
// @Failure      404     {string}  string
// @Failure      409     {string}  string
// @Router       /capture-forms/{formID}/submit [post]
func submitFormHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := svc.Form(chi.URLParam(r, "formID"))
		if err != nil {
			writeError(w, err)
			return
		}

		c, err := svc.Submit(r.Context(), f)
		if err != nil {
			writeError(w, err)
			return
		}

		status := http.StatusOK
		if f.Mode() == ModeNew {
			status = http.StatusCreated
		}
		writeJSON(w, status, toCaptureResponse(c))
	}
}

func readPhoto(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxPhotoBytes+(1<<20))

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return readLimited(r.Body)
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return readLimited(file)
}

func readLimited(rd io.Reader) ([]byte, error) {
	content, err := io.ReadAll(io.LimitReader(rd, MaxPhotoBytes+1))
	if err != nil {
		return nil, err
	}
	if len(content) > MaxPhotoBytes {
		return nil, &http.MaxBytesError{Limit: MaxPhotoBytes}
	}
	return content, nil
}

// decodeOptionalJSON acepta body vacío.
func decodeOptionalJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrFormNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrFormClosed), errors.Is(err, ErrPhotoLimit):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrUnsupportedPhoto):
		http.Error(w, err.Error(), http.StatusUnsupportedMediaType)
	case errors.Is(err, ErrConfirmationRequired):
		http.Error(w, err.Error(), http.StatusPreconditionRequired)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toCaptureResponse(c Capture) captureResponse {
	out := captureResponse{
		ID:           c.ID,
		Date:         c.Date,
		Time:         c.Time,
		Latitude:     c.Latitude,
		Longitude:    c.Longitude,
		Located:      c.Located(),
		Place:        c.Place,
		Observer:     c.Observer,
		Species:      c.Species,
		Kind:         string(c.Kind),
		Description:  c.Description,
		Photos:       c.Photos,
		Attack:       toAttackPayload(c.Attack),
		Synchronized: c.Synchronized,
	}
	if out.Photos == nil {
		out.Photos = []string{}
	}
	return out
}

func toFormResponse(st FormState) formResponse {
	out := formResponse{
		ID:             st.ID,
		Mode:           string(st.Mode),
		TargetID:       st.TargetID,
		Date:           st.Date,
		Time:           st.Time,
		Latitude:       st.Latitude,
		Longitude:      st.Longitude,
		Locating:       st.Locating,
		Place:          st.Place,
		Observer:       st.Observer,
		Species:        st.Species,
		Kind:           string(st.Kind),
		Description:    st.Description,
		Attack:         toAttackPayload(st.Attack),
		Photos:         st.Photos,
		CanAttachPhoto: st.CanAttachPhoto,
		MaxPhotos:      MaxPhotos,
	}
	if out.Photos == nil {
		out.Photos = []string{}
	}
	return out
}

func toAttackPayload(a *details.Attack) *attackPayload {
	if a == nil {
		return nil
	}
	return &attackPayload{
		AnimalType:         a.AnimalType,
		Outcome:            string(a.Outcome),
		PreventiveMeasures: a.PreventiveMeasures,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

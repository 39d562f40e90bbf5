package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "agendaestudos_backend/internals/features/agenda/provas/model"
)

/* =========================================================
   CREATE (form atual: sempre link, URL obrigatória)
   ========================================================= */

type CreateMaterialApoioRequest struct {
	Titulo  string `json:"material_titulo" validate:"required,min=1,max=255"`
	LinkURL string `json:"material_link_url" validate:"required,url,max=500"`
}

func (r *CreateMaterialApoioRequest) Normalize() {
	r.Titulo = strings.TrimSpace(r.Titulo)
	r.LinkURL = strings.TrimSpace(r.LinkURL)
}

func (r CreateMaterialApoioRequest) ToModel(provaID uuid.UUID) m.MaterialApoioModel {
	link := r.LinkURL
	return m.MaterialApoioModel{
		MaterialProvaID: provaID,
		MaterialTitulo:  r.Titulo,
		MaterialTipo:    m.TipoLink,
		MaterialLinkURL: &link,
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type MaterialApoioResponse struct {
	MaterialID uuid.UUID `json:"material_id"`
	ProvaID    uuid.UUID `json:"material_prova_id"`

	Titulo     string         `json:"material_titulo"`
	Tipo       m.MaterialTipo `json:"material_tipo"`
	LinkURL    *string        `json:"material_link_url,omitempty"`
	ArquivoURL *string        `json:"material_arquivo_url,omitempty"`

	CreatedAt time.Time `json:"material_created_at"`
}

func FromMaterialApoioModel(mm m.MaterialApoioModel) MaterialApoioResponse {
	return MaterialApoioResponse{
		MaterialID: mm.MaterialID,
		ProvaID:    mm.MaterialProvaID,
		Titulo:     mm.MaterialTitulo,
		Tipo:       mm.MaterialTipo,
		LinkURL:    mm.MaterialLinkURL,
		ArquivoURL: mm.MaterialArquivoURL,
		CreatedAt:  mm.MaterialCreatedAt,
	}
}

func FromMaterialApoioModels(items []m.MaterialApoioModel) []MaterialApoioResponse {
	out := make([]MaterialApoioResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromMaterialApoioModel(it))
	}
	return out
}

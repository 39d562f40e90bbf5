package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "agendaestudos_backend/internals/features/agenda/provas/model"
)

var validate = validator.New()

func TestCreateMaterialExigeURL(t *testing.T) {
	// URL ausente reprova
	req := CreateMaterialApoioRequest{Titulo: "Resumo"}
	req.Normalize()
	if err := validate.Struct(req); err == nil {
		t.Fatal("material sem URL deveria reprovar na validação")
	}

	// string que não é URL também
	req = CreateMaterialApoioRequest{Titulo: "Resumo", LinkURL: "nao é url"}
	req.Normalize()
	if err := validate.Struct(req); err == nil {
		t.Fatal("URL malformada deveria reprovar na validação")
	}

	// espaço em volta é tolerado
	req = CreateMaterialApoioRequest{Titulo: "  Resumo  ", LinkURL: "  https://exemplo.dev/resumo  "}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		t.Fatalf("URL válida reprovou: %v", err)
	}
	if req.Titulo != "Resumo" || req.LinkURL != "https://exemplo.dev/resumo" {
		t.Fatalf("normalize não aparou os campos: %+v", req)
	}
}

func TestCreateMaterialForcaTipoLink(t *testing.T) {
	req := CreateMaterialApoioRequest{Titulo: "Resumo", LinkURL: "https://exemplo.dev/resumo"}
	req.Normalize()

	provaID := uuid.New()
	mm := req.ToModel(provaID)

	// o form atual só cria links, independente do que o cliente mandar
	if mm.MaterialTipo != m.TipoLink {
		t.Fatalf("tipo deveria ser forçado para link, veio %s", mm.MaterialTipo)
	}
	if mm.MaterialProvaID != provaID {
		t.Fatalf("prova errada: %s", mm.MaterialProvaID)
	}
	if mm.MaterialLinkURL == nil || *mm.MaterialLinkURL != "https://exemplo.dev/resumo" {
		t.Fatalf("url não copiada: %+v", mm.MaterialLinkURL)
	}
}

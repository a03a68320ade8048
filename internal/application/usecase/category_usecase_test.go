package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vivero-api/internal/application/dto"
	"github.com/jhoicas/vivero-api/internal/application/usecase"
	"github.com/jhoicas/vivero-api/internal/domain"
	"github.com/jhoicas/vivero-api/internal/domain/entity"
	"github.com/jhoicas/vivero-api/internal/domain/listquery"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	byID      map[string]*entity.Category
	byName    map[string]*entity.Category
	listItems []*entity.Category
	total     int64
	all       []*entity.Category

	created *entity.Category
	updated *entity.Category

	deleteResult *entity.Category
	deleteErr    error
	deletedID    string
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	f.created = c
	return nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	return f.byID[id], nil
}

func (f *fakeCategoryRepo) GetByName(_ context.Context, name string) (*entity.Category, error) {
	return f.byName[name], nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	f.updated = c
	return nil
}

func (f *fakeCategoryRepo) List(_ context.Context, _ *listquery.Descriptor) ([]*entity.Category, error) {
	return f.listItems, nil
}

func (f *fakeCategoryRepo) Count(_ context.Context, _ *listquery.Descriptor) (int64, error) {
	return f.total, nil
}

func (f *fakeCategoryRepo) ListAll(_ context.Context) ([]*entity.Category, error) {
	return f.all, nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id string) (*entity.Category, error) {
	f.deletedID = id
	return f.deleteResult, f.deleteErr
}

type fakePlantRepo struct {
	deactivateCount  int64
	deactivateErr    error
	deactivateCalled bool
	gotCategoryID    string
}

func (f *fakePlantRepo) Create(_ context.Context, _ *entity.Plant) error   { return nil }
func (f *fakePlantRepo) Update(_ context.Context, _ *entity.Plant) error   { return nil }
func (f *fakePlantRepo) Delete(_ context.Context, _ string) (bool, error)  { return false, nil }
func (f *fakePlantRepo) GetByID(_ context.Context, _ string) (*entity.Plant, error) {
	return nil, nil
}
func (f *fakePlantRepo) List(_ context.Context, _ *listquery.Descriptor) ([]*entity.Plant, error) {
	return nil, nil
}
func (f *fakePlantRepo) Count(_ context.Context, _ *listquery.Descriptor) (int64, error) {
	return 0, nil
}

func (f *fakePlantRepo) DeactivateByCategory(_ context.Context, categoryID string) (int64, error) {
	f.deactivateCalled = true
	f.gotCategoryID = categoryID
	return f.deactivateCount, f.deactivateErr
}

func newUC(cats *fakeCategoryRepo, plants *fakePlantRepo) *usecase.CategoryUseCase {
	return usecase.NewCategoryUseCase(cats, plants, testStaticBase)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete + cascade de consistencia
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_ConPlantasAsociadas_DevuelveConteo(t *testing.T) {
	cats := &fakeCategoryRepo{
		deleteResult: &entity.Category{ID: "cat-1", Name: "Suculentas"},
	}
	plants := &fakePlantRepo{deactivateCount: 2}

	out, err := newUC(cats, plants).Delete(context.Background(), "cat-1")
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, int64(2), out.DeactivatedPlants)
	assert.Equal(t, dto.DeletedCategory{ID: "cat-1", Name: "Suculentas"}, out.DeletedData)
	assert.Equal(t, "cat-1", plants.gotCategoryID,
		"el cascade debe desactivar por el ID recién eliminado")
}

func TestDelete_SinPlantasAsociadas_ConteoCeroNoEsError(t *testing.T) {
	cats := &fakeCategoryRepo{
		deleteResult: &entity.Category{ID: "cat-2", Name: "Vacía"},
	}
	plants := &fakePlantRepo{deactivateCount: 0}

	out, err := newUC(cats, plants).Delete(context.Background(), "cat-2")
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.DeactivatedPlants)
}

func TestDelete_CategoriaInexistente_NoCorreElCascade(t *testing.T) {
	cats := &fakeCategoryRepo{deleteResult: nil}
	plants := &fakePlantRepo{}

	_, err := newUC(cats, plants).Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, plants.deactivateCalled,
		"si el delete no eliminó exactamente una fila, el coordinador no debe correr")
}

func TestDelete_CascadeFalla_EsCompletitudParcial(t *testing.T) {
	cats := &fakeCategoryRepo{
		deleteResult: &entity.Category{ID: "cat-3", Name: "Helechos"},
	}
	plants := &fakePlantRepo{deactivateErr: errors.New("connection reset")}

	_, err := newUC(cats, plants).Delete(context.Background(), "cat-3")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCascadeIncomplete,
		"borrado exitoso + cascade fallido debe distinguirse de un fallo total")
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / Update
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_NombreDuplicado_Falla(t *testing.T) {
	cats := &fakeCategoryRepo{
		byName: map[string]*entity.Category{"Cactus": {ID: "ya-existe", Name: "Cactus"}},
	}

	_, err := newUC(cats, &fakePlantRepo{}).Create(context.Background(), dto.CreateCategoryRequest{Name: "Cactus"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Nil(t, cats.created, "no debe persistirse nada")
}

func TestCreate_AsignaIDYTimestamps(t *testing.T) {
	cats := &fakeCategoryRepo{}

	out, err := newUC(cats, &fakePlantRepo{}).Create(context.Background(), dto.CreateCategoryRequest{
		Name:  "Orquídeas",
		Image: "orquidea.png",
	})
	require.NoError(t, err)

	require.NotNil(t, cats.created)
	assert.NotEmpty(t, cats.created.ID)
	assert.False(t, cats.created.CreatedAt.IsZero())
	assert.Equal(t, cats.created.CreatedAt, cats.created.UpdatedAt)
	assert.Equal(t, testStaticBase+"/orquidea.png", out.ImageURL)
}

func TestUpdate_Parcial_SoloCambiaLosCamposEnviados(t *testing.T) {
	original := &entity.Category{
		ID:          "cat-9",
		Name:        "Interior",
		Description: "plantas de sombra",
		Icon:        "leaf",
		CreatedAt:   time.Now().Add(-time.Hour),
	}
	cats := &fakeCategoryRepo{byID: map[string]*entity.Category{"cat-9": original}}

	nuevaDesc := "plantas de interior y sombra"
	out, err := newUC(cats, &fakePlantRepo{}).Update(context.Background(), "cat-9", dto.UpdateCategoryRequest{
		Description: &nuevaDesc,
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "Interior", out.Name, "name no enviado, no cambia")
	assert.Equal(t, nuevaDesc, out.Description)
	assert.Equal(t, "leaf", out.Icon)
	assert.True(t, cats.updated.UpdatedAt.After(original.CreatedAt))
}

func TestUpdate_Inexistente_DevuelveNil(t *testing.T) {
	cats := &fakeCategoryRepo{byID: map[string]*entity.Category{}}

	out, err := newUC(cats, &fakePlantRepo{}).Update(context.Background(), "nada", dto.UpdateCategoryRequest{})
	require.NoError(t, err)
	assert.Nil(t, out, "el handler traduce nil a 404")
}

// ──────────────────────────────────────────────────────────────────────────────
// List: metadatos de paginación
// ──────────────────────────────────────────────────────────────────────────────

func TestList_CalculaMetadatosDePagina(t *testing.T) {
	cats := &fakeCategoryRepo{
		listItems: []*entity.Category{
			{ID: "1", Name: "Uno"}, {ID: "2", Name: "Dos"}, {ID: "3", Name: "Tres"},
		},
		total: 7,
	}

	out, err := newUC(cats, &fakePlantRepo{}).List(context.Background(), map[string]string{
		"page": "2", "limit": "3",
	})
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Len(t, out.Data, 3)
	assert.Equal(t, 2, out.Page)
	assert.Equal(t, 3, out.Limit)
	assert.Equal(t, int64(7), out.Total)
	assert.Equal(t, int64(3), out.TotalPages, "ceil(7/3) = 3")
	assert.True(t, out.HasNext)
	assert.True(t, out.HasPrev)
}

func TestList_UltimaPagina_SinSiguiente(t *testing.T) {
	cats := &fakeCategoryRepo{listItems: nil, total: 7}

	out, err := newUC(cats, &fakePlantRepo{}).List(context.Background(), map[string]string{
		"page": "3", "limit": "3",
	})
	require.NoError(t, err)

	assert.False(t, out.HasNext)
	assert.True(t, out.HasPrev)
	assert.NotNil(t, out.Data, "data vacía serializa como [], no null")
}

func TestList_QueryInvalida_Propaga400(t *testing.T) {
	_, err := newUC(&fakeCategoryRepo{}, &fakePlantRepo{}).List(context.Background(), map[string]string{
		"limit": "muchos",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)
}

// internal/services/product_service_test.go
package services

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/epocha/admin-backend/internal/models"
)

func testResolveURL(rel string) string {
	return "http://example.com/" + rel
}

func TestBuildColorIndex(t *testing.T) {
	colors := []models.Color{
		{BaseModel: models.BaseModel{ID: 1021}, RuName: "Красный", EnName: "Red", RGB: "255,0,0"},
		{BaseModel: models.BaseModel{ID: 1022}, RuName: "Синий", EnName: "Blue", RGB: "0,0,255"},
	}

	index := buildColorIndex(colors)

	assert.Len(t, index, 2)
	assert.Equal(t, "Red", index[1021].EnName)
	assert.Equal(t, "0,0,255", index[1022].RGB)
}

func TestBuildFormIndexResolvesImageURL(t *testing.T) {
	forms := []models.Form{
		{BaseModel: models.BaseModel{ID: 1031}, RuName: "Круг", EnName: "Circle", ChangeForm: 1.5, Image: "static/img/1031_form.png"},
	}

	index := buildFormIndex(forms, testResolveURL)

	assert.Equal(t, "http://example.com/static/img/1031_form.png", index[1031].Image)
	assert.Equal(t, 1.5, index[1031].ChangeForm)
}

func TestGroupLinkedPreCategoriesKeepsDuplicates(t *testing.T) {
	links := []linkedPreCategory{
		{ProductID: 10, ID: 1051, RuName: "Новинки", EnName: "New", Address: "new"},
		{ProductID: 10, ID: 1051, RuName: "Новинки", EnName: "New", Address: "new"},
		{ProductID: 11, ID: 1052, RuName: "Акции", EnName: "Sale", Address: "sale"},
	}

	grouped := groupLinkedPreCategories(links)

	assert.Len(t, grouped[10], 2, "duplicate link rows must stay duplicated")
	assert.Len(t, grouped[11], 1)
	assert.Equal(t, "sale", grouped[11][0].Address)
}

func TestAssembleProductDropsDanglingReferences(t *testing.T) {
	product := models.Product{
		BaseModel: models.BaseModel{ID: 10},
		RuName:    models.LocalizedText{Name: "Кольцо", Desc: "Золотое"},
		EnName:    models.LocalizedText{Name: "Ring", Desc: "Gold"},
		Images:    pq.StringArray{"static/img/a.png"},
		Options: models.ProductOptions{
			IsForm:   true,
			IsColor:  true,
			FormIDs:  models.Int64List{1031, 9999},
			ColorIDs: models.Int64List{1021, 8888},
		},
	}

	colorIndex := map[int64]ColorView{1021: {ID: 1021, EnName: "Red"}}
	formIndex := map[int64]FormView{1031: {ID: 1031, EnName: "Circle"}}

	view := assembleProduct(product, colorIndex, formIndex, nil, testResolveURL)

	assert.Len(t, view.Options.Form, 1, "unknown form IDs are dropped, not errored")
	assert.Len(t, view.Options.Color, 1, "unknown color IDs are dropped, not errored")
	assert.Equal(t, int64(1031), view.Options.Form[0].ID)
	assert.Equal(t, int64(1021), view.Options.Color[0].ID)
}

func TestAssembleProductResolvesImageURLs(t *testing.T) {
	product := models.Product{
		BaseModel: models.BaseModel{ID: 10},
		Images:    pq.StringArray{"static/img/a.png", "static/img/b.png"},
	}

	view := assembleProduct(product, nil, nil, nil, testResolveURL)

	assert.Equal(t, []string{
		"http://example.com/static/img/a.png",
		"http://example.com/static/img/b.png",
	}, view.Images)
}

func TestAssembleProductDefaultsPreCategories(t *testing.T) {
	product := models.Product{BaseModel: models.BaseModel{ID: 10}}

	view := assembleProduct(product, nil, nil, map[int64][]PreCategoryView{}, testResolveURL)

	assert.NotNil(t, view.PreCategories)
	assert.Empty(t, view.PreCategories)
}

func TestAssembleProductAttachesLinkedPreCategories(t *testing.T) {
	product := models.Product{BaseModel: models.BaseModel{ID: 10}}
	linkIndex := map[int64][]PreCategoryView{
		10: {{ID: 1051, Address: "new"}},
	}

	view := assembleProduct(product, nil, nil, linkIndex, testResolveURL)

	assert.Len(t, view.PreCategories, 1)
	assert.Equal(t, "new", view.PreCategories[0].Address)
}

func TestGetProductRejectsNonPositiveID(t *testing.T) {
	svc := NewProductService(nil, nil)

	_, err := svc.GetProduct(0)
	assert.ErrorIs(t, err, ErrNotFound, "id 0 must not fall through to an unfiltered read")

	_, err = svc.GetProduct(-7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPreCategoryResolverCreatesOncePerBatch(t *testing.T) {
	var lookups, creates int
	r := newPreCategoryResolver(
		func(PreCategoryInput) (int64, bool, error) {
			lookups++
			return 0, false, nil
		},
		func(PreCategoryInput) (int64, error) {
			creates++
			return 1051, nil
		},
	)

	in := PreCategoryInput{Address: "new", RuName: "Новинки", EnName: "New"}
	for i := 0; i < 5; i++ {
		id, err := r.resolve(in)
		require.NoError(t, err)
		assert.Equal(t, int64(1051), id)
	}

	assert.Equal(t, 1, lookups, "a descriptor repeated in one batch hits the store once")
	assert.Equal(t, 1, creates, "a descriptor repeated in one batch creates one row")
}

func TestPreCategoryResolverReusesExistingRow(t *testing.T) {
	var creates int
	r := newPreCategoryResolver(
		func(PreCategoryInput) (int64, bool, error) {
			return 1052, true, nil
		},
		func(PreCategoryInput) (int64, error) {
			creates++
			return 0, nil
		},
	)

	id, err := r.resolve(PreCategoryInput{Address: "sale", RuName: "Акции", EnName: "Sale"})
	require.NoError(t, err)
	assert.Equal(t, int64(1052), id)
	assert.Zero(t, creates)
}

func TestPreCategoryResolverDistinguishesDescriptors(t *testing.T) {
	next := int64(1051)
	r := newPreCategoryResolver(
		func(PreCategoryInput) (int64, bool, error) {
			return 0, false, nil
		},
		func(PreCategoryInput) (int64, error) {
			next++
			return next, nil
		},
	)

	a, err := r.resolve(PreCategoryInput{Address: "new", RuName: "Новинки", EnName: "New"})
	require.NoError(t, err)
	b, err := r.resolve(PreCategoryInput{Address: "new", RuName: "Новое", EnName: "New"})
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "descriptors differing in any field resolve separately")
}

// newDryRunDB opens a gorm handle that builds SQL without executing
// it, so statement shape can be asserted without a live server.
func newDryRunDB(t *testing.T) (*gorm.DB, *[]string) {
	t.Helper()

	db, err := gorm.Open(postgres.Open(""), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	var stmts []string
	err = db.Callback().Delete().After("gorm:delete").Register("capture_sql", func(tx *gorm.DB) {
		stmts = append(stmts, tx.Statement.SQL.String())
	})
	require.NoError(t, err)

	return db, &stmts
}

func TestDeleteProductsTouchesOnlyProductRows(t *testing.T) {
	db, stmts := newDryRunDB(t)
	svc := NewProductService(db, nil)

	require.NoError(t, svc.DeleteProducts([]int64{10, 11}))

	require.Len(t, *stmts, 1)
	sql := (*stmts)[0]
	assert.Contains(t, sql, `DELETE FROM "products"`)
	assert.NotContains(t, sql, "product_pre_categories", "association rows survive product deletion")
	assert.NotContains(t, sql, "reviews", "reviews survive product deletion")
}

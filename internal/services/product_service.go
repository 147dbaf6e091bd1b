// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/epocha/admin-backend/internal/models"
	"github.com/epocha/admin-backend/internal/utils"
)

type ProductService struct {
	db    *gorm.DB
	media *MediaService
}

func NewProductService(db *gorm.DB, media *MediaService) *ProductService {
	return &ProductService{
		db:    db,
		media: media,
	}
}

// Views returned by the aggregation. Field names mirror what the
// admin UI has always consumed.

type ColorView struct {
	ID     int64  `json:"id"`
	RuName string `json:"ru_name"`
	EnName string `json:"en_name"`
	RGB    string `json:"rgb"`
}

type FormView struct {
	ID         int64   `json:"id"`
	RuName     string  `json:"ru_name"`
	EnName     string  `json:"en_name"`
	ChangeForm float64 `json:"changeForm"`
	Image      string  `json:"image"`
}

type PreCategoryView struct {
	ID      int64  `json:"id"`
	RuName  string `json:"ru_name"`
	EnName  string `json:"en_name"`
	Address string `json:"address"`
}

type ProductOptionsView struct {
	IsForm  bool        `json:"isForm"`
	IsColor bool        `json:"isColor"`
	Form    []FormView  `json:"form"`
	Color   []ColorView `json:"color"`
}

type ProductView struct {
	ID            int64                `json:"id"`
	RuName        models.LocalizedText `json:"ru_name"`
	EnName        models.LocalizedText `json:"en_name"`
	Images        []string             `json:"images"`
	IsFrom        bool                 `json:"isFrom"`
	PreCategories []PreCategoryView    `json:"preCategories"`
	Price         models.Price         `json:"price"`
	Options       ProductOptionsView   `json:"options"`
}

// Request shapes. The same body serves create (as a batch element)
// and update.

type PreCategoryInput struct {
	Address string `json:"address" validate:"required"`
	RuName  string `json:"ru_name" validate:"required"`
	EnName  string `json:"en_name" validate:"required"`
}

type ProductOptionsInput struct {
	IsForm   bool             `json:"isForm"`
	IsColor  bool             `json:"isColor"`
	FormIDs  models.Int64List `json:"form_ids"`
	ColorIDs models.Int64List `json:"color_ids"`
}

type ProductRequest struct {
	RuName      models.LocalizedText `json:"ru_name"`
	EnName      models.LocalizedText `json:"en_name"`
	Images      []string             `json:"images"`
	IsFrom      bool                 `json:"isFrom"`
	PreCategory []PreCategoryInput   `json:"preCategory" validate:"dive"`
	Price       models.Price         `json:"price"`
	Options     ProductOptionsInput  `json:"options"`
}

// linkedPreCategory is one row of the association table joined to the
// precategory it points at.
type linkedPreCategory struct {
	ProductID int64
	ID        int64
	RuName    string
	EnName    string
	Address   string
}

// ListProducts returns every product fully aggregated. An empty
// catalog is a not-found condition, not an empty list.
func (s *ProductService) ListProducts() ([]ProductView, error) {
	views, err := s.aggregate(nil)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, ErrNotFound
	}
	return views, nil
}

func (s *ProductService) GetProduct(id int64) (*ProductView, error) {
	// Generated IDs are always positive, so nothing else can exist.
	if id <= 0 {
		return nil, ErrNotFound
	}

	views, err := s.aggregate(&id)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, ErrNotFound
	}
	return &views[0], nil
}

// aggregate issues four reads in one transaction (products, colors,
// forms, and association rows joined to precategories), then composes
// the nested documents in memory. A nil productID means the whole
// catalog. The colors/forms lookup maps are built once per call so
// the composition never goes back to the database per product. The
// colors and forms tables are read in full even for a single product:
// both are small lookup tables and the maps keep resolution O(1), so
// narrowing those reads per ID buys nothing.
func (s *ProductService) aggregate(productID *int64) ([]ProductView, error) {
	var views []ProductView

	err := s.db.Transaction(func(tx *gorm.DB) error {
		productQuery := tx.Model(&models.Product{})
		if productID != nil {
			productQuery = productQuery.Where("id = ?", *productID)
		}

		var products []models.Product
		if err := productQuery.Find(&products).Error; err != nil {
			return fmt.Errorf("failed to fetch products: %w", err)
		}

		var colors []models.Color
		if err := tx.Find(&colors).Error; err != nil {
			return fmt.Errorf("failed to fetch colors: %w", err)
		}

		var forms []models.Form
		if err := tx.Find(&forms).Error; err != nil {
			return fmt.Errorf("failed to fetch forms: %w", err)
		}

		linkQuery := tx.Table("product_pre_categories AS link").
			Select("link.product_id, pc.id, pc.ru_name, pc.en_name, pc.address").
			Joins("JOIN pre_categories pc ON pc.id = link.pre_category_id")
		if productID != nil {
			linkQuery = linkQuery.Where("link.product_id = ?", *productID)
		}

		var links []linkedPreCategory
		if err := linkQuery.Scan(&links).Error; err != nil {
			return fmt.Errorf("failed to fetch precategory links: %w", err)
		}

		colorIndex := buildColorIndex(colors)
		formIndex := buildFormIndex(forms, s.media.ResolveURL)
		linkIndex := groupLinkedPreCategories(links)

		views = make([]ProductView, 0, len(products))
		for _, p := range products {
			views = append(views, assembleProduct(p, colorIndex, formIndex, linkIndex, s.media.ResolveURL))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return views, nil
}

func buildColorIndex(colors []models.Color) map[int64]ColorView {
	index := make(map[int64]ColorView, len(colors))
	for _, c := range colors {
		index[c.ID] = ColorView{
			ID:     c.ID,
			RuName: c.RuName,
			EnName: c.EnName,
			RGB:    c.RGB,
		}
	}
	return index
}

func buildFormIndex(forms []models.Form, resolveURL func(string) string) map[int64]FormView {
	index := make(map[int64]FormView, len(forms))
	for _, f := range forms {
		index[f.ID] = FormView{
			ID:         f.ID,
			RuName:     f.RuName,
			EnName:     f.EnName,
			ChangeForm: f.ChangeForm,
			Image:      resolveURL(f.Image),
		}
	}
	return index
}

// groupLinkedPreCategories groups the association rows by product.
// Duplicate link rows stay duplicated: the grouping reflects the
// table, it does not deduplicate it.
func groupLinkedPreCategories(links []linkedPreCategory) map[int64][]PreCategoryView {
	grouped := make(map[int64][]PreCategoryView)
	for _, link := range links {
		grouped[link.ProductID] = append(grouped[link.ProductID], PreCategoryView{
			ID:      link.ID,
			RuName:  link.RuName,
			EnName:  link.EnName,
			Address: link.Address,
		})
	}
	return grouped
}

// assembleProduct resolves the product's embedded references against
// the lookup maps. IDs absent from the maps are dropped silently;
// dangling references never error.
func assembleProduct(
	p models.Product,
	colorIndex map[int64]ColorView,
	formIndex map[int64]FormView,
	linkIndex map[int64][]PreCategoryView,
	resolveURL func(string) string,
) ProductView {
	formViews := make([]FormView, 0, len(p.Options.FormIDs))
	for _, id := range p.Options.FormIDs {
		if view, ok := formIndex[id]; ok {
			formViews = append(formViews, view)
		}
	}

	colorViews := make([]ColorView, 0, len(p.Options.ColorIDs))
	for _, id := range p.Options.ColorIDs {
		if view, ok := colorIndex[id]; ok {
			colorViews = append(colorViews, view)
		}
	}

	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, resolveURL(img))
	}

	preCategories := linkIndex[p.ID]
	if preCategories == nil {
		preCategories = []PreCategoryView{}
	}

	return ProductView{
		ID:            p.ID,
		RuName:        p.RuName,
		EnName:        p.EnName,
		Images:        images,
		IsFrom:        p.IsFrom,
		PreCategories: preCategories,
		Price:         p.Price,
		Options: ProductOptionsView{
			IsForm:  p.Options.IsForm,
			IsColor: p.Options.IsColor,
			Form:    formViews,
			Color:   colorViews,
		},
	}
}

// CreateProducts inserts the batch and its precategory links in one
// transaction. Each inline precategory descriptor is resolved by
// exact (address, ru_name, en_name) match, reused when present and
// created when not, and a link row is inserted per resolved pair
// with no existence check. The lookup runs inside the transaction, so
// descriptors repeated within one batch resolve to a single row;
// separate batches can still create duplicates.
func (s *ProductService) CreateProducts(reqs []ProductRequest) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		rows := make([]models.Product, 0, len(reqs))
		var linkRows []models.ProductPreCategory
		resolver := newPreCategoryResolver(
			func(in PreCategoryInput) (int64, bool, error) {
				var existing models.PreCategory
				err := tx.Where("address = ? AND ru_name = ? AND en_name = ?", in.Address, in.RuName, in.EnName).
					First(&existing).Error
				if err == nil {
					return existing.ID, true, nil
				}
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return 0, false, nil
				}
				return 0, false, fmt.Errorf("failed to look up precategory: %w", err)
			},
			func(in PreCategoryInput) (int64, error) {
				created := models.PreCategory{
					BaseModel: models.BaseModel{ID: utils.NewID(utils.PrefixPreCategory)},
					Address:   in.Address,
					RuName:    in.RuName,
					EnName:    in.EnName,
				}
				if err := tx.Create(&created).Error; err != nil {
					return 0, fmt.Errorf("failed to create precategory: %w", err)
				}
				return created.ID, nil
			},
		)

		for _, req := range reqs {
			id := utils.NewID(utils.PrefixProduct)

			paths := make(pq.StringArray, 0, len(req.Images))
			for i, payload := range req.Images {
				rel, err := s.media.SaveImage(payload, fmt.Sprintf("%d_%d_product.png", id, i))
				if err != nil {
					return err
				}
				paths = append(paths, rel)
			}

			for _, in := range req.PreCategory {
				preCategoryID, err := resolver.resolve(in)
				if err != nil {
					return err
				}
				linkRows = append(linkRows, models.ProductPreCategory{
					ProductID:     id,
					PreCategoryID: preCategoryID,
				})
			}

			rows = append(rows, models.Product{
				BaseModel: models.BaseModel{ID: id},
				RuName:    req.RuName,
				EnName:    req.EnName,
				Images:    paths,
				IsFrom:    req.IsFrom,
				Price:     req.Price,
				Options: models.ProductOptions{
					IsForm:   req.Options.IsForm,
					IsColor:  req.Options.IsColor,
					FormIDs:  req.Options.FormIDs,
					ColorIDs: req.Options.ColorIDs,
				},
			})
		}

		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return fmt.Errorf("failed to create products: %w", err)
			}
		}
		if len(linkRows) > 0 {
			if err := tx.Create(&linkRows).Error; err != nil {
				return fmt.Errorf("failed to create precategory links: %w", err)
			}
		}
		return nil
	})
}

// preCategoryResolver resolves inline descriptors to precategory row
// IDs for one creation batch. Results are cached by the full
// (address, ru_name, en_name) triple, so a descriptor repeated across
// the batch resolves to exactly one row. The cache lives only for the
// batch: separate requests still race and may create duplicates.
type preCategoryResolver struct {
	cache  map[PreCategoryInput]int64
	lookup func(PreCategoryInput) (int64, bool, error)
	create func(PreCategoryInput) (int64, error)
}

func newPreCategoryResolver(
	lookup func(PreCategoryInput) (int64, bool, error),
	create func(PreCategoryInput) (int64, error),
) *preCategoryResolver {
	return &preCategoryResolver{
		cache:  make(map[PreCategoryInput]int64),
		lookup: lookup,
		create: create,
	}
}

func (r *preCategoryResolver) resolve(in PreCategoryInput) (int64, error) {
	if id, ok := r.cache[in]; ok {
		return id, nil
	}

	id, found, err := r.lookup(in)
	if err != nil {
		return 0, err
	}
	if !found {
		if id, err = r.create(in); err != nil {
			return 0, err
		}
	}

	r.cache[in] = id
	return id, nil
}

// UpdateProduct rewrites the scalar fields and, when images are
// supplied, replaces the stored image set wholesale.
func (s *ProductService) UpdateProduct(id int64, req *ProductRequest) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to fetch product: %w", err)
		}

		product.RuName = req.RuName
		product.EnName = req.EnName
		product.IsFrom = req.IsFrom
		product.Price = req.Price
		product.Options = models.ProductOptions{
			IsForm:   req.Options.IsForm,
			IsColor:  req.Options.IsColor,
			FormIDs:  req.Options.FormIDs,
			ColorIDs: req.Options.ColorIDs,
		}

		if len(req.Images) > 0 {
			paths := make(pq.StringArray, 0, len(req.Images))
			for i, payload := range req.Images {
				rel, err := s.media.SaveImage(payload, fmt.Sprintf("%d_%d_product.png", id, i))
				if err != nil {
					return err
				}
				paths = append(paths, rel)
			}
			product.Images = paths
		}

		if err := tx.Save(&product).Error; err != nil {
			return fmt.Errorf("failed to update product: %w", err)
		}
		return nil
	})
}

// DeleteProducts removes the product rows only. Association rows and
// reviews referencing the deleted IDs stay behind; there is no
// cascade in this schema.
func (s *ProductService) DeleteProducts(ids []int64) error {
	if err := s.db.Where("id IN ?", ids).Delete(&models.Product{}).Error; err != nil {
		return fmt.Errorf("failed to delete products: %w", err)
	}
	return nil
}

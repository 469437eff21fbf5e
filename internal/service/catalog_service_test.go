package service

import (
	"testing"

	"go-teknostore-api/internal/model"
	"go-teknostore-api/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Named shared-cache memory DB so every pooled connection sees the same
	// database, fresh per test.
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.RepairRequest{},
		&model.RepairRequestImage{},
		&model.Order{},
		&model.OrderItem{},
		&model.BlogPost{},
		&model.Campaign{},
		&model.NewsletterSubscriber{},
		&model.ContactMessage{},
		&model.PageView{},
	))
	return db
}

func newCatalogService(t *testing.T) (CatalogService, *gorm.DB) {
	db := newTestDB(t)
	return NewCatalogService(repository.NewCategoryRepo(db), repository.NewProductRepo(db)), db
}

func mustCategory(t *testing.T, db *gorm.DB, name string, order int, parentID *uuid.UUID) *model.Category {
	t.Helper()
	category := &model.Category{Name: name, Slug: "cat-" + uuid.NewString()[:8], ParentID: parentID, Order: order}
	require.NoError(t, db.Create(category).Error)
	return category
}

func mustProducts(t *testing.T, db *gorm.DB, categoryID uuid.UUID, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		product := &model.Product{
			Title:      "Product " + uuid.NewString()[:8],
			Slug:       "prod-" + uuid.NewString()[:8],
			Price:      decimal.NewFromInt(100),
			CategoryID: categoryID,
		}
		require.NoError(t, db.Create(product).Error)
	}
}

func TestCategoryTreeAggregatesRootCounts(t *testing.T) {
	svc, db := newCatalogService(t)

	// A (2 products) -> B (3 products)
	a := mustCategory(t, db, "Laptops", 1, nil)
	b := mustCategory(t, db, "Gaming Laptops", 1, &a.ID)
	mustProducts(t, db, a.ID, 2)
	mustProducts(t, db, b.ID, 3)

	tree, err := svc.GetCategoryTree()
	require.NoError(t, err)
	require.Len(t, tree, 1)

	root := tree[0]
	assert.Equal(t, a.ID, root.ID)
	assert.EqualValues(t, 5, root.ProductCount)
	require.Len(t, root.Children, 1)
	assert.Equal(t, b.ID, root.Children[0].ID)
	assert.EqualValues(t, 3, root.Children[0].ProductCount)
	assert.Empty(t, root.Children[0].Children)
}

func TestCategoryTreeNestedNodesKeepDirectCounts(t *testing.T) {
	svc, db := newCatalogService(t)

	// root (1) -> mid (1) -> leaf (2): only the root is overwritten with the
	// subtree total, the mid level keeps its direct count.
	root := mustCategory(t, db, "Components", 1, nil)
	mid := mustCategory(t, db, "Storage", 1, &root.ID)
	leaf := mustCategory(t, db, "SSD", 1, &mid.ID)
	mustProducts(t, db, root.ID, 1)
	mustProducts(t, db, mid.ID, 1)
	mustProducts(t, db, leaf.ID, 2)

	tree, err := svc.GetCategoryTree()
	require.NoError(t, err)
	require.Len(t, tree, 1)

	assert.EqualValues(t, 4, tree[0].ProductCount)
	require.Len(t, tree[0].Children, 1)
	assert.EqualValues(t, 1, tree[0].Children[0].ProductCount)
	require.Len(t, tree[0].Children[0].Children, 1)
	assert.EqualValues(t, 2, tree[0].Children[0].Children[0].ProductCount)
}

func TestCategoryTreeExcludesOrphans(t *testing.T) {
	svc, db := newCatalogService(t)

	mustCategory(t, db, "Visible", 1, nil)
	missing := uuid.New()
	orphan := mustCategory(t, db, "Orphan", 1, &missing)

	tree, err := svc.GetCategoryTree()
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, "Visible", tree[0].Name)

	// The orphan is dropped, not surfaced as an error
	for _, node := range tree {
		assert.NotEqual(t, orphan.ID, node.ID)
	}
}

func TestCategoryTreeOrdering(t *testing.T) {
	svc, db := newCatalogService(t)

	root := mustCategory(t, db, "Peripherals", 1, nil)
	mustCategory(t, db, "Mice", 2, &root.ID)
	mustCategory(t, db, "Keyboards", 1, &root.ID)
	mustCategory(t, db, "Headsets", 2, &root.ID)

	tree, err := svc.GetCategoryTree()
	require.NoError(t, err)
	require.Len(t, tree, 1)
	require.Len(t, tree[0].Children, 3)

	// display_order ascending, then name ascending
	assert.Equal(t, "Keyboards", tree[0].Children[0].Name)
	assert.Equal(t, "Headsets", tree[0].Children[1].Name)
	assert.Equal(t, "Mice", tree[0].Children[2].Name)
}

func TestGetCategoriesByParent(t *testing.T) {
	svc, db := newCatalogService(t)

	a := mustCategory(t, db, "Monitors", 1, nil)
	b := mustCategory(t, db, "4K Monitors", 1, &a.ID)
	mustProducts(t, db, a.ID, 2)
	mustProducts(t, db, b.ID, 3)

	// Root listing carries the full subtree total
	roots, err := svc.GetCategoriesByParent(nil)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, a.ID, roots[0].ID)
	assert.EqualValues(t, 5, roots[0].ProductCount)

	// Child listing carries direct counts
	children, err := svc.GetCategoriesByParent(&a.ID)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, b.ID, children[0].ID)
	assert.EqualValues(t, 3, children[0].ProductCount)
}

func TestGetCategoryTotalCountRecursesArbitraryDepth(t *testing.T) {
	svc, db := newCatalogService(t)

	l1 := mustCategory(t, db, "L1", 1, nil)
	l2 := mustCategory(t, db, "L2", 1, &l1.ID)
	l3 := mustCategory(t, db, "L3", 1, &l2.ID)
	l4 := mustCategory(t, db, "L4", 1, &l3.ID)
	mustProducts(t, db, l1.ID, 1)
	mustProducts(t, db, l3.ID, 2)
	mustProducts(t, db, l4.ID, 4)

	count, err := svc.GetCategoryTotalCount(l1.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 7, count)

	count, err = svc.GetCategoryTotalCount(l3.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 6, count)
}

func TestDeleteCategoryGuards(t *testing.T) {
	svc, db := newCatalogService(t)

	parent := mustCategory(t, db, "Parent", 1, nil)
	child := mustCategory(t, db, "Child", 1, &parent.ID)
	mustProducts(t, db, child.ID, 1)

	err := svc.DeleteCategory(parent.ID)
	assert.ErrorIs(t, err, ErrCategoryHasChildren)

	err = svc.DeleteCategory(child.ID)
	assert.ErrorIs(t, err, ErrCategoryHasProducts)

	empty := mustCategory(t, db, "Empty", 1, nil)
	assert.NoError(t, svc.DeleteCategory(empty.ID))

	_, err = repository.NewCategoryRepo(db).FindByID(empty.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreateCategoryGeneratesSlug(t *testing.T) {
	svc, _ := newCatalogService(t)

	category := &model.Category{Name: "Gaming Chairs"}
	require.NoError(t, svc.CreateCategory(category, "tester"))
	assert.Equal(t, "gaming-chairs", category.Slug)

	dup := &model.Category{Name: "Gaming Chairs"}
	assert.Error(t, svc.CreateCategory(dup, "tester"))
}

func TestGetProductsByCategorySlugIncludesDescendants(t *testing.T) {
	svc, db := newCatalogService(t)

	root := mustCategory(t, db, "Computers", 1, nil)
	sub := mustCategory(t, db, "Desktops", 1, &root.ID)
	other := mustCategory(t, db, "Cables", 1, nil)
	mustProducts(t, db, root.ID, 1)
	mustProducts(t, db, sub.ID, 2)
	mustProducts(t, db, other.ID, 5)

	products, err := svc.GetProductsByCategorySlug(root.Slug)
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

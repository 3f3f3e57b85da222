package menu_test

import (
	"cafe-menu-backend/domain"
	"cafe-menu-backend/entities"
	"cafe-menu-backend/pkg/menu"
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// stubS3 stands in for the image store; uploads just echo a URL.
type stubS3 struct {
	uploads int
}

func (s *stubS3) UploadFile(_ context.Context, file *multipart.FileHeader, folder string) (string, error) {
	s.uploads++
	return fmt.Sprintf("https://images.test/%s/%s", folder, file.Filename), nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.MenuItem{}))
	return db
}

func newTestService(t *testing.T) (menu.MenuService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return menu.NewMenuService(menu.NewMenuRepository(db), &stubS3{}), db
}

func seedItem(t *testing.T, db *gorm.DB, item entities.MenuItem) entities.MenuItem {
	t.Helper()
	// Create writes the column default back into the struct, so the
	// seeded flag must be captured before it is overwritten.
	inactive := !item.IsActive
	require.NoError(t, db.Create(&item).Error)
	if inactive {
		// Create skips zero-valued fields that carry a column default,
		// so archived seeds need an explicit flip.
		require.NoError(t, db.Model(&item).Update("is_active", false).Error)
		item.IsActive = false
	}
	return item
}

func fetchItem(t *testing.T, db *gorm.DB, id uint) entities.MenuItem {
	t.Helper()
	var item entities.MenuItem
	require.NoError(t, db.First(&item, id).Error)
	return item
}

func groupSection(t *testing.T, section domain.CategorySection, group string) domain.GroupSection {
	t.Helper()
	for _, g := range section.Groups {
		if g.Group == group {
			return g
		}
	}
	t.Fatalf("group %q not found", group)
	return domain.GroupSection{}
}

func TestPublicMenuSortsByOrderThenName(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	b := seedItem(t, db, entities.MenuItem{Category: domain.CategoryCoffee, Name: "B", Group: domain.GroupBasic, SortOrder: 1, IsActive: true})
	a := seedItem(t, db, entities.MenuItem{Category: domain.CategoryCoffee, Name: "A", Group: domain.GroupBasic, SortOrder: 2, IsActive: true})
	c := seedItem(t, db, entities.MenuItem{Category: domain.CategoryCoffee, Name: "C", Group: domain.GroupBasic, SortOrder: 0, IsActive: true})

	section, err := svc.PublicMenu(ctx, domain.CategoryCoffee)
	require.NoError(t, err)

	basic := groupSection(t, section, domain.GroupBasic)
	require.Len(t, basic.Items, 3)
	assert.Equal(t, []uint{c.ID, b.ID, a.ID}, []uint{basic.Items[0].ID, basic.Items[1].ID, basic.Items[2].ID})
}

func TestPublicMenuTieBreaksByName(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	seedItem(t, db, entities.MenuItem{Category: domain.CategorySweet, Name: "baklava", SortOrder: 0, IsActive: true})
	seedItem(t, db, entities.MenuItem{Category: domain.CategorySweet, Name: "anzac", SortOrder: 0, IsActive: true})
	seedItem(t, db, entities.MenuItem{Category: domain.CategorySweet, Name: "cheesecake", SortOrder: 0, IsActive: true})

	section, err := svc.PublicMenu(ctx, domain.CategorySweet)
	require.NoError(t, err)

	require.Len(t, section.Items, 3)
	assert.Equal(t, "anzac", section.Items[0].Name)
	assert.Equal(t, "baklava", section.Items[1].Name)
	assert.Equal(t, "cheesecake", section.Items[2].Name)
}

func TestPublicMenuExcludesArchived(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	// Archived item sorts first on paper but must never surface.
	seedItem(t, db, entities.MenuItem{Category: domain.CategoryCoffee, Name: "retired drink", Group: domain.GroupBasic, SortOrder: 0, IsActive: false})
	active := seedItem(t, db, entities.MenuItem{Category: domain.CategoryCoffee, Name: "espresso", Group: domain.GroupBasic, SortOrder: 5, IsActive: true})

	section, err := svc.PublicMenu(ctx, domain.CategoryCoffee)
	require.NoError(t, err)

	basic := groupSection(t, section, domain.GroupBasic)
	require.Len(t, basic.Items, 1)
	assert.Equal(t, active.ID, basic.Items[0].ID)
}

func TestPublicMenuGroupSectionOrder(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	seedItem(t, db, entities.MenuItem{Category: domain.CategoryCoffee, Name: "syrup", Group: domain.GroupAddon, IsActive: true})

	section, err := svc.PublicMenu(ctx, domain.CategoryCoffee)
	require.NoError(t, err)

	// All four sections present in fixed order, empty ones included.
	require.Len(t, section.Groups, 4)
	assert.Equal(t, domain.GroupBasic, section.Groups[0].Group)
	assert.Equal(t, domain.GroupAlternative, section.Groups[1].Group)
	assert.Equal(t, domain.GroupOther, section.Groups[2].Group)
	assert.Equal(t, domain.GroupAddon, section.Groups[3].Group)
	assert.Empty(t, section.Groups[0].Items)
	assert.Len(t, section.Groups[3].Items, 1)
}

func TestPublicMenuEmptyCategory(t *testing.T) {
	svc, _ := newTestService(t)

	section, err := svc.PublicMenu(context.Background(), domain.CategoryToast)
	require.NoError(t, err)
	assert.Empty(t, section.Items)
}

func TestPublicMenuUnknownCategory(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.PublicMenu(context.Background(), "pizza")
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
}

func TestUpdateOrderRenumbersDensely(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	one := seedItem(t, db, entities.MenuItem{Category: domain.CategoryCoffee, Name: "one", Group: domain.GroupBasic, SortOrder: 1, IsActive: true})
	two := seedItem(t, db, entities.MenuItem{Category: domain.CategoryCoffee, Name: "two", Group: domain.GroupBasic, SortOrder: 2, IsActive: true})
	three := seedItem(t, db, entities.MenuItem{Category: domain.CategoryCoffee, Name: "three", Group: domain.GroupBasic, SortOrder: 0, IsActive: true})

	err := svc.UpdateOrder(ctx, domain.CategoryCoffee, domain.UpdateOrderRequest{
		Items: []uint{two.ID, one.ID, three.ID},
		Group: domain.GroupBasic,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, fetchItem(t, db, two.ID).SortOrder)
	assert.Equal(t, 1, fetchItem(t, db, one.ID).SortOrder)
	assert.Equal(t, 2, fetchItem(t, db, three.ID).SortOrder)
}

func TestUpdateOrderSkipsUnknownIDs(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	known := seedItem(t, db, entities.MenuItem{Category: domain.CategoryCoffee, Name: "known", Group: domain.GroupBasic, SortOrder: 7, IsActive: true})

	err := svc.UpdateOrder(ctx, domain.CategoryCoffee, domain.UpdateOrderRequest{
		Items: []uint{known.ID, 99},
		Group: domain.GroupBasic,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, fetchItem(t, db, known.ID).SortOrder)
}

func TestUpdateOrderSkipsOutOfScopeGroup(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	basic := seedItem(t, db, entities.MenuItem{Category: domain.CategoryCoffee, Name: "basic", Group: domain.GroupBasic, SortOrder: 3, IsActive: true})
	stray := seedItem(t, db, entities.MenuItem{Category: domain.CategoryCoffee, Name: "stray", Group: domain.GroupAlternative, SortOrder: 9, IsActive: true})
	last := seedItem(t, db, entities.MenuItem{Category: domain.CategoryCoffee, Name: "last", Group: domain.GroupBasic, SortOrder: 0, IsActive: true})

	// Stale payload mixes an alternative-group id into a basic-scoped
	// reorder; it must not be renumbered and must not consume a position.
	err := svc.UpdateOrder(ctx, domain.CategoryCoffee, domain.UpdateOrderRequest{
		Items: []uint{basic.ID, stray.ID, last.ID},
		Group: domain.GroupBasic,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, fetchItem(t, db, basic.ID).SortOrder)
	assert.Equal(t, 9, fetchItem(t, db, stray.ID).SortOrder)
	assert.Equal(t, 1, fetchItem(t, db, last.ID).SortOrder)
}

func TestUpdateOrderLeavesOtherGroupsAlone(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	b1 := seedItem(t, db, entities.MenuItem{Category: domain.CategoryCoffee, Name: "b1", Group: domain.GroupBasic, SortOrder: 0, IsActive: true})
	b2 := seedItem(t, db, entities.MenuItem{Category: domain.CategoryCoffee, Name: "b2", Group: domain.GroupBasic, SortOrder: 1, IsActive: true})
	alt := seedItem(t, db, entities.MenuItem{Category: domain.CategoryCoffee, Name: "alt", Group: domain.GroupAlternative, SortOrder: 4, IsActive: true})

	err := svc.UpdateOrder(ctx, domain.CategoryCoffee, domain.UpdateOrderRequest{
		Items: []uint{b2.ID, b1.ID},
		Group: domain.GroupBasic,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, fetchItem(t, db, alt.ID).SortOrder)
}

func TestUpdateOrderIdempotent(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	a := seedItem(t, db, entities.MenuItem{Category: domain.CategoryToast, Name: "avocado", SortOrder: 2, IsActive: true})
	b := seedItem(t, db, entities.MenuItem{Category: domain.CategoryToast, Name: "brie", SortOrder: 0, IsActive: true})

	req := domain.UpdateOrderRequest{Items: []uint{a.ID, b.ID}}
	require.NoError(t, svc.UpdateOrder(ctx, domain.CategoryToast, req))
	first := []int{fetchItem(t, db, a.ID).SortOrder, fetchItem(t, db, b.ID).SortOrder}

	require.NoError(t, svc.UpdateOrder(ctx, domain.CategoryToast, req))
	second := []int{fetchItem(t, db, a.ID).SortOrder, fetchItem(t, db, b.ID).SortOrder}

	assert.Equal(t, []int{0, 1}, first)
	assert.Equal(t, first, second)
}

func TestUpdateOrderUnknownCategory(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	item := seedItem(t, db, entities.MenuItem{Category: domain.CategoryToast, Name: "rye", SortOrder: 5, IsActive: true})

	err := svc.UpdateOrder(ctx, "invalid", domain.UpdateOrderRequest{Items: []uint{item.ID}})
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
	assert.Equal(t, 5, fetchItem(t, db, item.ID).SortOrder)
}

func TestUpdateOrderIgnoresOtherCategoryIDs(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	toast := seedItem(t, db, entities.MenuItem{Category: domain.CategoryToast, Name: "sourdough", SortOrder: 8, IsActive: true})
	sweet := seedItem(t, db, entities.MenuItem{Category: domain.CategorySweet, Name: "brownie", SortOrder: 1, IsActive: true})

	// A sweet id in a toast reorder resolves to nothing within the
	// category and is skipped.
	err := svc.UpdateOrder(ctx, domain.CategoryToast, domain.UpdateOrderRequest{
		Items: []uint{sweet.ID, toast.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fetchItem(t, db, sweet.ID).SortOrder)
	assert.Equal(t, 0, fetchItem(t, db, toast.ID).SortOrder)
}

func TestCreateItemDefaults(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	res, err := svc.CreateItem(ctx, domain.CategoryCoffee, domain.CreateMenuItemRequest{Name: "cortado", Price: 14})
	require.NoError(t, err)

	stored := fetchItem(t, db, res.ID)
	assert.Equal(t, 0, stored.SortOrder)
	assert.True(t, stored.IsActive)
	assert.Equal(t, domain.GroupBasic, stored.Group)
}

func TestCreateItemGroupValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateItem(ctx, domain.CategoryToast, domain.CreateMenuItemRequest{Name: "rye", Group: domain.GroupBasic})
	assert.ErrorIs(t, err, domain.ErrGroupNotAllowed)

	_, err = svc.CreateItem(ctx, domain.CategoryCoffee, domain.CreateMenuItemRequest{Name: "mystery", Group: "seasonal"})
	assert.ErrorIs(t, err, domain.ErrUnknownGroup)

	_, err = svc.CreateItem(ctx, "pizza", domain.CreateMenuItemRequest{Name: "margherita"})
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
}

func TestCreateItemDualPriceCoffeeOnly(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	second := 16.0
	coffee, err := svc.CreateItem(ctx, domain.CategoryCoffee, domain.CreateMenuItemRequest{Name: "filter", Price: 14, Price2: &second})
	require.NoError(t, err)
	require.NotNil(t, fetchItem(t, db, coffee.ID).Price2)
	assert.True(t, coffee.HasTwoPrices)

	toast, err := svc.CreateItem(ctx, domain.CategoryToast, domain.CreateMenuItemRequest{Name: "brie", Price: 8, Price2: &second})
	require.NoError(t, err)
	assert.Nil(t, fetchItem(t, db, toast.ID).Price2)
}

func TestUpdateItemKeepsSortOrderAndVisibility(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	item := seedItem(t, db, entities.MenuItem{Category: domain.CategorySweet, Name: "brownie", Price: 6, SortOrder: 4, IsActive: true})

	newPrice := 7.5
	res, err := svc.UpdateItem(ctx, domain.CategorySweet, item.ID, domain.UpdateMenuItemRequest{Name: "double brownie", Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, "double brownie", res.Name)

	stored := fetchItem(t, db, item.ID)
	assert.Equal(t, 4, stored.SortOrder)
	assert.True(t, stored.IsActive)
	assert.Equal(t, 7.5, stored.Price)
}

func TestUpdateItemNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateItem(context.Background(), domain.CategorySweet, 42, domain.UpdateMenuItemRequest{Name: "ghost"})
	assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)
}

func TestGetItemScopedByCategory(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	item := seedItem(t, db, entities.MenuItem{Category: domain.CategoryCoffee, Name: "espresso", Group: domain.GroupBasic, IsActive: true})

	_, err := svc.GetItem(ctx, domain.CategoryToast, item.ID)
	assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)

	res, err := svc.GetItem(ctx, domain.CategoryCoffee, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "espresso", res.Name)
}

func TestArchiveRestoreKeepsSortOrder(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	item := seedItem(t, db, entities.MenuItem{Category: domain.CategoryToast, Name: "avocado", SortOrder: 3, IsActive: true})

	require.NoError(t, svc.ArchiveItem(ctx, domain.CategoryToast, item.ID))
	archived := fetchItem(t, db, item.ID)
	assert.False(t, archived.IsActive)
	assert.Equal(t, 3, archived.SortOrder)

	require.NoError(t, svc.RestoreItem(ctx, domain.CategoryToast, item.ID))
	restored := fetchItem(t, db, item.ID)
	assert.True(t, restored.IsActive)
	assert.Equal(t, 3, restored.SortOrder)
}

func TestArchiveListsOnlyInactive(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	seedItem(t, db, entities.MenuItem{Category: domain.CategorySweet, Name: "active", IsActive: true})
	retired := seedItem(t, db, entities.MenuItem{Category: domain.CategorySweet, Name: "retired", IsActive: false})

	sections, err := svc.Archive(ctx)
	require.NoError(t, err)
	require.Len(t, sections, 3)

	var sweets domain.CategorySection
	for _, s := range sections {
		if s.Category == domain.CategorySweet {
			sweets = s
		}
	}
	require.Len(t, sweets.Items, 1)
	assert.Equal(t, retired.ID, sweets.Items[0].ID)
}

func TestDeleteItemLeavesGap(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	first := seedItem(t, db, entities.MenuItem{Category: domain.CategoryToast, Name: "first", SortOrder: 0, IsActive: true})
	middle := seedItem(t, db, entities.MenuItem{Category: domain.CategoryToast, Name: "middle", SortOrder: 1, IsActive: true})
	last := seedItem(t, db, entities.MenuItem{Category: domain.CategoryToast, Name: "last", SortOrder: 2, IsActive: true})

	require.NoError(t, svc.DeleteItem(ctx, domain.CategoryToast, middle.ID))

	// The gap stays until the next reorder of the partition.
	assert.Equal(t, 0, fetchItem(t, db, first.ID).SortOrder)
	assert.Equal(t, 2, fetchItem(t, db, last.ID).SortOrder)

	err := svc.DeleteItem(ctx, domain.CategoryToast, middle.ID)
	assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)
}

func TestUploadItemImage(t *testing.T) {
	db := newTestDB(t)
	s3 := &stubS3{}
	svc := menu.NewMenuService(menu.NewMenuRepository(db), s3)
	ctx := context.Background()

	item := seedItem(t, db, entities.MenuItem{Category: domain.CategorySweet, Name: "brownie", IsActive: true})

	url, err := svc.UploadItemImage(ctx, domain.CategorySweet, item.ID, &multipart.FileHeader{Filename: "brownie.jpg"})
	require.NoError(t, err)
	assert.Equal(t, 1, s3.uploads)
	assert.Equal(t, url, fetchItem(t, db, item.ID).ImageURL)
}

func TestPriceDisplayOnResponses(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	whole := seedItem(t, db, entities.MenuItem{Category: domain.CategorySweet, Name: "anzac", Price: 5, IsActive: true})
	fractional := seedItem(t, db, entities.MenuItem{Category: domain.CategorySweet, Name: "brownie", Price: 6.5, IsActive: true})

	wholeRes, err := svc.GetItem(ctx, domain.CategorySweet, whole.ID)
	require.NoError(t, err)
	assert.Equal(t, "5", wholeRes.PriceDisplay)

	fracRes, err := svc.GetItem(ctx, domain.CategorySweet, fractional.ID)
	require.NoError(t, err)
	assert.Equal(t, "6.50", fracRes.PriceDisplay)
}

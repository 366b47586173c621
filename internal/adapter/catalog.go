package adapter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
)

// ErrComponentNotFound is returned by a Catalog that does not know a component.
var ErrComponentNotFound = errors.New("component not found")

var componentNamePattern = regexp.MustCompile(`^V[A-Z][A-Za-z0-9]*$`)

// Component is a UI library component an alias points at.
type Component struct {
	Name   string `json:"component"`
	Import string `json:"from"`
}

// Catalog locates components by name.
type Catalog interface {
	Lookup(ctx context.Context, name string) (Component, error)
}

func componentFor(name string) Component {
	return Component{Name: name, Import: "vuetify/components/" + name}
}

// StaticCatalog knows a fixed set of component names.
type StaticCatalog struct {
	names map[string]struct{}
}

// NewStaticCatalog returns a catalog of names, or of BuiltinComponents when none are given.
func NewStaticCatalog(names ...string) StaticCatalog {
	if len(names) == 0 {
		names = BuiltinComponents()
	}
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return StaticCatalog{names: set}
}

// Lookup reports whether name is in the catalog.
func (c StaticCatalog) Lookup(ctx context.Context, name string) (Component, error) {
	if err := ctx.Err(); err != nil {
		return Component{}, err
	}
	if _, ok := c.names[name]; !ok {
		return Component{}, fmt.Errorf("%s: %w", name, ErrComponentNotFound)
	}
	return componentFor(name), nil
}

// ModuleCatalog looks components up in an installed vuetify package under
// <Root>/node_modules/vuetify/lib/components.
type ModuleCatalog struct {
	Root string
}

// Lookup checks that the component directory exists.
func (c ModuleCatalog) Lookup(ctx context.Context, name string) (Component, error) {
	if err := ctx.Err(); err != nil {
		return Component{}, err
	}
	if !componentNamePattern.MatchString(name) {
		return Component{}, fmt.Errorf("%q is not a component name: %w", name, ErrComponentNotFound)
	}

	dir := filepath.Join(c.Root, "node_modules", "vuetify", "lib", "components", name)
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Component{}, fmt.Errorf("%s: %w", name, ErrComponentNotFound)
		}
		return Component{}, fmt.Errorf("stat component %s: %w", name, err)
	}
	if !info.IsDir() {
		return Component{}, fmt.Errorf("%s: %w", name, ErrComponentNotFound)
	}
	return componentFor(name), nil
}

// BuiltinComponents lists the top-level components shipped by the UI library.
func BuiltinComponents() []string {
	return []string{
		"VAlert", "VApp", "VAppBar", "VAutocomplete", "VAvatar", "VBadge",
		"VBanner", "VBottomNavigation", "VBottomSheet", "VBreadcrumbs", "VBtn",
		"VBtnGroup", "VBtnToggle", "VCard", "VCarousel", "VCheckbox", "VChip",
		"VChipGroup", "VCode", "VColorPicker", "VCombobox", "VConfirmEdit",
		"VCounter", "VDataIterator", "VDataTable", "VDatePicker", "VDefaultsProvider",
		"VDialog", "VDivider", "VEmptyState", "VExpansionPanel", "VFab", "VField",
		"VFileInput", "VFooter", "VForm", "VGrid", "VHover", "VIcon", "VImg",
		"VInfiniteScroll", "VInput", "VItemGroup", "VKbd", "VLabel", "VLayout",
		"VLazy", "VList", "VLocaleProvider", "VMain", "VMenu", "VMessages",
		"VNavigationDrawer", "VNoSsr", "VNumberInput", "VOtpInput", "VOverlay",
		"VPagination", "VParallax", "VProgressCircular", "VProgressLinear",
		"VRadio", "VRadioGroup", "VRangeSlider", "VRating", "VResponsive",
		"VSelect", "VSelectionControl", "VSelectionControlGroup", "VSheet",
		"VSkeletonLoader", "VSlideGroup", "VSlider", "VSnackbar", "VSparkline",
		"VSpeedDial", "VStepper", "VSwitch", "VSystemBar", "VTable", "VTabs",
		"VTextField", "VTextarea", "VThemeProvider", "VTimeline", "VToolbar",
		"VTooltip", "VTreeview", "VValidation", "VVirtualScroll", "VWindow",
	}
}

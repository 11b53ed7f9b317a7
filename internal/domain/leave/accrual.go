package leave

import "fmt"

// Category is static reference data mapping a leave category to its
// entitlement in days. EntitledDays 0 means the category has no fixed
// cap (granted per assignment or medical note).
type Category struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	EntitledDays int    `json:"entitled_days"`
}

// categories is the company policy table: annual/sick/overtime/travel
// plus the seven company-regulation ("PP") special-permission clauses.
var categories = []Category{
	{ID: "CUTI_TAHUNAN", Label: "Cuti Tahunan", EntitledDays: 12},
	{ID: "SAKIT", Label: "Sakit", EntitledDays: 0},
	{ID: "DINAS_LUAR", Label: "Dinas Luar", EntitledDays: 0},
	{ID: "LEMBUR", Label: "Request Lembur", EntitledDays: 0},
	{ID: "PP_A", Label: "Karyawan menikah", EntitledDays: 3},
	{ID: "PP_B", Label: "Anak karyawan menikah", EntitledDays: 2},
	{ID: "PP_C", Label: "Istri sah melahirkan atau keguguran", EntitledDays: 2},
	{ID: "PP_D", Label: "Suami/istri/anak/menantu/orang tua/mertua meninggal dunia", EntitledDays: 2},
	{ID: "PP_E", Label: "Anak karyawan dikhitan/dibaptis", EntitledDays: 2},
	{ID: "PP_F", Label: "Anggota keluarga dalam satu rumah meninggal dunia", EntitledDays: 1},
	{ID: "PP_G", Label: "Musibah/bencana alam yang tidak mungkin dihindari", EntitledDays: 2},
}

// Categories returns the full policy table.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// EntitlementFor returns the entitled day count for a category. It does
// not track balances; consumed days live with the caller.
func EntitlementFor(categoryID string) (int, error) {
	for _, c := range categories {
		if c.ID == categoryID {
			return c.EntitledDays, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrCategoryNotFound, categoryID)
}

// CategoryByID returns the full category entry.
func CategoryByID(categoryID string) (Category, error) {
	for _, c := range categories {
		if c.ID == categoryID {
			return c, nil
		}
	}
	return Category{}, fmt.Errorf("%w: %s", ErrCategoryNotFound, categoryID)
}

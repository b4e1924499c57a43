package order

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

// The order service queries these columns by name in raw and chained SQL;
// the parsed schema must actually carry them.
func TestOrderSchemaColumns(t *testing.T) {
	s, err := schema.Parse(&Order{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	for _, col := range []string{"status", "price_list_id", "deliverer_id", "client_id", "discount_total"} {
		_, ok := s.FieldsByDBName[col]
		assert.True(t, ok, "orders is missing column %q", col)
	}
}

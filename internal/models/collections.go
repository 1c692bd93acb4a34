package models

import "github.com/dukapos/duka/internal/schema"

// Collection names. Each collection is an independent replication unit with
// its own checkpoint and error state.
const (
	CollectionProducts      = "products"
	CollectionOrders        = "orders"
	CollectionCustomers     = "customers"
	CollectionSuppliers     = "suppliers"
	CollectionExpenses      = "expenses"
	CollectionDeliveries    = "deliveries"
	CollectionLayaways      = "layaways"
	CollectionLedgerEntries = "ledger_entries"
	CollectionCashSessions  = "cash_sessions"
	CollectionPromotions    = "promotions"
	CollectionReportNotes   = "report_notes"
)

// Collections returns every collection name in definition order.
func Collections() []string {
	return []string{
		CollectionProducts,
		CollectionOrders,
		CollectionCustomers,
		CollectionSuppliers,
		CollectionExpenses,
		CollectionDeliveries,
		CollectionLayaways,
		CollectionLedgerEntries,
		CollectionCashSessions,
		CollectionPromotions,
		CollectionReportNotes,
	}
}

// metaFields are the schema entries shared by every collection.
func metaFields(extra map[string]schema.Kind) map[string]schema.Kind {
	fields := map[string]schema.Kind{
		FieldID:       schema.KindString,
		FieldModified: schema.KindString,
		FieldDeleted:  schema.KindBool,
	}
	for k, v := range extra {
		fields[k] = v
	}
	return fields
}

// Schemas returns the schema for every collection, keyed by collection
// name. Only fields the application relies on are pinned; documents may
// carry additional fields freely.
func Schemas() map[string]schema.Schema {
	return map[string]schema.Schema{
		CollectionProducts: {
			Required: []string{FieldID, "name"},
			Fields: metaFields(map[string]schema.Kind{
				"name":        schema.KindString,
				"stock":       schema.KindNumber,
				"costPrice":   schema.KindNumber,
				"retailPrice": schema.KindNumber,
				"barcode":     schema.KindString,
				"category":    schema.KindString,
			}),
		},
		CollectionOrders: {
			Required: []string{FieldID, "total"},
			Fields: metaFields(map[string]schema.Kind{
				"total":       schema.KindNumber,
				"status":      schema.KindString,
				"orderNumber": schema.KindString,
				"customerId":  schema.KindString,
				"items":       schema.KindArray,
				"date":        schema.KindString,
			}),
		},
		CollectionCustomers: {
			Required: []string{FieldID, "name"},
			Fields: metaFields(map[string]schema.Kind{
				"name":  schema.KindString,
				"phone": schema.KindString,
				"debt":  schema.KindNumber,
			}),
		},
		CollectionSuppliers: {
			Required: []string{FieldID, "name"},
			Fields: metaFields(map[string]schema.Kind{
				"name":    schema.KindString,
				"phone":   schema.KindString,
				"balance": schema.KindNumber,
			}),
		},
		CollectionExpenses: {
			Required: []string{FieldID, "amount"},
			Fields: metaFields(map[string]schema.Kind{
				"amount":   schema.KindNumber,
				"category": schema.KindString,
				"note":     schema.KindString,
				"date":     schema.KindString,
			}),
		},
		CollectionDeliveries: {
			Required: []string{FieldID, "orderId"},
			Fields: metaFields(map[string]schema.Kind{
				"orderId":   schema.KindString,
				"riderName": schema.KindString,
				"fee":       schema.KindNumber,
				"status":    schema.KindString,
				"paidAt":    schema.KindString,
			}),
		},
		CollectionLayaways: {
			Required: []string{FieldID, "customerId", "total"},
			Fields: metaFields(map[string]schema.Kind{
				"customerId": schema.KindString,
				"total":      schema.KindNumber,
				"paid":       schema.KindNumber,
				"status":     schema.KindString,
				"dueDate":    schema.KindString,
			}),
		},
		CollectionLedgerEntries: {
			Required: []string{FieldID, "amount"},
			Fields: metaFields(map[string]schema.Kind{
				"amount":  schema.KindNumber,
				"kind":    schema.KindString,
				"account": schema.KindString,
				"date":    schema.KindString,
			}),
		},
		CollectionCashSessions: {
			Required: []string{FieldID, "openedAt"},
			Fields: metaFields(map[string]schema.Kind{
				"openedAt":     schema.KindString,
				"closedAt":     schema.KindString,
				"openingFloat": schema.KindNumber,
				"countedCash":  schema.KindNumber,
				"expectedCash": schema.KindNumber,
				"reconciledBy": schema.KindString,
			}),
		},
		CollectionPromotions: {
			Required: []string{FieldID, "name"},
			Fields: metaFields(map[string]schema.Kind{
				"name":     schema.KindString,
				"discount": schema.KindNumber,
				"active":   schema.KindBool,
				"endsAt":   schema.KindString,
			}),
		},
		CollectionReportNotes: {
			Required: []string{FieldID, "text"},
			Fields: metaFields(map[string]schema.Kind{
				"text": schema.KindString,
				"date": schema.KindString,
			}),
		},
	}
}

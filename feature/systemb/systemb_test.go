package systemb

import (
	"strings"
	"testing"

	"order-hub/core/reconcile"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapStatus(t *testing.T) {
	tests := []struct {
		code int
		want reconcile.Status
	}{
		{1, reconcile.StatusPending},
		{2, reconcile.StatusProcessing},
		{3, reconcile.StatusShipped},
		{4, reconcile.StatusCompleted},
		{5, reconcile.StatusCancelled},
		{0, reconcile.StatusUnknown},
		{6, reconcile.StatusUnknown},
		{-1, reconcile.StatusUnknown},
		{42, reconcile.StatusUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MapStatus(tt.code), "code %d", tt.code)
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"ZeroPadded", "03/15/2024", "2024-03-15"},
		{"Unpadded", "3/5/2024", "2024-03-05"},
		{"WithTime", "03/15/2024 14:30", "2024-03-15"},
		{"WithClock", "3/15/2024 2:30 PM", "2024-03-15"},
		{"Surrounded", " 03/15/2024 ", "2024-03-15"},
		{"AlreadyCanonical", "2024-03-15", "2024-03-15"},
		{"DayFirstIsInvalid", "15/03/2024", "15/03/2024"},
		{"Garbage", "someday", "someday"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDate(tt.raw))
		})
	}
}

func TestNormalizeDate_Idempotent(t *testing.T) {
	for _, raw := range []string{"03/15/2024", "12/31/1999", "2024-02-29"} {
		once := NormalizeDate(raw)
		assert.Equal(t, once, NormalizeDate(once), raw)
	}
}

func TestRead(t *testing.T) {
	t.Run("HeaderMapping", func(t *testing.T) {
		input := "order_num,client_name,date_placed,total,order_status\nB1,Bob,03/15/2024,50.00,3\n"
		records, err := Read(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, records, 1)

		assert.Equal(t, "B1", records[0].OrderNum)
		assert.Equal(t, "Bob", records[0].ClientName)
		assert.Equal(t, "03/15/2024", records[0].DatePlaced)
		assert.True(t, decimal.RequireFromString("50").Equal(records[0].Total))
		assert.Equal(t, 3, records[0].OrderStatus)
	})

	t.Run("ColumnOrderIrrelevant", func(t *testing.T) {
		input := "order_status,total,date_placed,client_name,order_num,extra\n2,9.99,01/02/2024,\"Doe, John\",B7,ignored\n"
		records, err := Read(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, records, 1)

		assert.Equal(t, "B7", records[0].OrderNum)
		assert.Equal(t, "Doe, John", records[0].ClientName)
		assert.Equal(t, "01/02/2024", records[0].DatePlaced)
		assert.Equal(t, 2, records[0].OrderStatus)
	})

	t.Run("MissingFieldsDefault", func(t *testing.T) {
		input := "order_num,client_name,date_placed,total,order_status\nB2,Ann\nB3,,,,\n"
		records, err := Read(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, "B2", records[0].OrderNum)
		assert.Equal(t, "Ann", records[0].ClientName)
		assert.Empty(t, records[0].DatePlaced)
		assert.True(t, records[0].Total.IsZero())
		assert.Equal(t, 0, records[0].OrderStatus)
		assert.Equal(t, "B3", records[1].OrderNum)
	})

	t.Run("IDAndNameKeptExact", func(t *testing.T) {
		input := "order_num,client_name,date_placed,total,order_status\n B1 ,\"  Bob Jr \", 03/15/2024 , 50.00 , 3 \n"
		records, err := Read(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, records, 1)

		assert.Equal(t, " B1 ", records[0].OrderNum)
		assert.Equal(t, "  Bob Jr ", records[0].ClientName)
		assert.Equal(t, "03/15/2024", records[0].DatePlaced)
		assert.True(t, decimal.RequireFromString("50").Equal(records[0].Total))
		assert.Equal(t, 3, records[0].OrderStatus)
	})

	t.Run("MissingColumnDefaults", func(t *testing.T) {
		input := "order_num,client_name\nB4,Zed\n"
		records, err := Read(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, 0, records[0].OrderStatus)
	})

	t.Run("BOMAndBlankRows", func(t *testing.T) {
		input := "\xEF\xBB\xBForder_num,client_name,date_placed,total,order_status\n,,,,\nB5,Kim,02/20/2024,1,1\n"
		records, err := Read(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "B5", records[0].OrderNum)
	})

	t.Run("EmptyFile", func(t *testing.T) {
		records, err := Read(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("HeaderOnly", func(t *testing.T) {
		records, err := Read(strings.NewReader("order_num,client_name,date_placed,total,order_status\n"))
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestRead_Malformed(t *testing.T) {
	t.Run("BareQuote", func(t *testing.T) {
		input := "order_num,client_name,date_placed,total,order_status\nB1,Bo\"b,03/15/2024,50.00,3\n"
		_, err := Read(strings.NewReader(input))
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("UnterminatedQuote", func(t *testing.T) {
		input := "order_num,client_name\nB1,\"Bob\n"
		_, err := Read(strings.NewReader(input))
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("NonNumericStatus", func(t *testing.T) {
		input := "order_num,client_name,date_placed,total,order_status\nB1,Bob,03/15/2024,50.00,shipped\n"
		_, err := Read(strings.NewReader(input))
		require.ErrorIs(t, err, ErrMalformed)

		var rowErr *RowError
		require.ErrorAs(t, err, &rowErr)
		assert.Equal(t, 2, rowErr.Row)
		assert.Equal(t, ColumnOrderStatus, rowErr.Column)
		assert.Equal(t, "shipped", rowErr.Value)
	})

	t.Run("NonDecimalTotal", func(t *testing.T) {
		input := "order_num,client_name,date_placed,total,order_status\nB1,Bob,03/15/2024,fifty,3\n"
		_, err := Read(strings.NewReader(input))

		var rowErr *RowError
		require.ErrorAs(t, err, &rowErr)
		assert.Equal(t, ColumnTotal, rowErr.Column)
	})
}

func TestAdapter_Decode(t *testing.T) {
	a := NewAdapter("system_b_orders.csv")
	assert.Equal(t, "system_b", a.Name())
	assert.Equal(t, reconcile.SystemB, a.System())
	assert.Equal(t, "system_b_orders.csv", a.ObjectName())

	input := "order_num,client_name,date_placed,total,order_status\nB1,Bob,03/15/2024,50.00,3\nB2,Ann,bad-date,1.00,9\n"
	orders, err := a.Decode(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, reconcile.UnifiedOrder{
		OrderID:      "B1",
		SourceSystem: reconcile.SystemB,
		CustomerName: "Bob",
		OrderDate:    "2024-03-15",
		TotalAmount:  orders[0].TotalAmount,
		Status:       reconcile.StatusShipped,
	}, orders[0])
	assert.True(t, decimal.RequireFromString("50").Equal(orders[0].TotalAmount))

	assert.Equal(t, "bad-date", orders[1].OrderDate)
	assert.Equal(t, reconcile.StatusUnknown, orders[1].Status)
}

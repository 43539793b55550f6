package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeBooks(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want []Book
	}{
		{
			name: "bare array with aliases",
			in:   `[{"id":7,"ISBN":"A1","title":"Go","author":"Rob","total":3,"available":2}]`,
			want: []Book{{ID: "7", ISBN: "A1", Title: "Go", Author: "Rob", Quantity: 3, AvailableBooks: 2}},
		},
		{
			name: "envelope",
			in:   `{"books":[{"_id":"65f0","isbn":"B2","quantity":1,"availableBooks":0}]}`,
			want: []Book{{ID: "65f0", ISBN: "B2", Quantity: 1}},
		},
		{
			name: "empty envelope",
			in:   `{}`,
			want: []Book{},
		},
		{
			name: "null body",
			in:   `null`,
			want: []Book{},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := DecodeBooks([]byte(tt.in))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeBookEcho(t *testing.T) {
	t.Parallel()
	b, ok := DecodeBookEcho([]byte(`{"message":"ok","book":{"isbn":"A1","title":"New"}}`))
	require.True(t, ok)
	require.Equal(t, Book{ISBN: "A1", Title: "New"}, b)

	b, ok = DecodeBookEcho([]byte(`{"isbn":"A1","title":"Bare"}`))
	require.True(t, ok)
	require.Equal(t, "Bare", b.Title)

	_, ok = DecodeBookEcho([]byte(`{"message":"Book updated"}`))
	require.False(t, ok)

	_, ok = DecodeBookEcho([]byte(``))
	require.False(t, ok)
}

func TestLoan_Unmarshal(t *testing.T) {
	t.Parallel()
	var h HistoryResponse
	err := JSON.Unmarshal([]byte(`{"borrows":[
		{"_id":"l1","bookId":{"_id":"b1","isbn":"A1"},"borrowDate":"2024-05-01T10:00:00Z","returnDate":null},
		{"id":2,"bookId":42,"returnDate":"2024-05-03T10:00:00Z"},
		{"_id":"l3","bookId":"b3"},
		{"_id":"l4","bookId":"b4","returnDate":"not-a-date"}
	]}`), &h)
	require.NoError(t, err)
	require.Len(t, h.Borrows, 4)

	require.Equal(t, BookRef{ID: "b1", ISBN: "A1", Embedded: true}, h.Borrows[0].Book)
	require.True(t, h.Borrows[0].Active())
	require.NotNil(t, h.Borrows[0].BorrowDate)

	require.Equal(t, "2", h.Borrows[1].ID)
	require.Equal(t, BookRef{ID: "42"}, h.Borrows[1].Book)
	require.False(t, h.Borrows[1].Active())

	require.True(t, h.Borrows[2].Active())

	require.False(t, h.Borrows[3].Active())
	require.Nil(t, h.Borrows[3].ReturnDate)
}

func TestDecodeProfile(t *testing.T) {
	t.Parallel()
	p, err := DecodeProfile([]byte(`{"_id":"u1","fullName":"Ada","email":"ada@example.com"}`))
	require.NoError(t, err)
	require.Equal(t, "u1", p.ID())
	require.Equal(t, "Ada", p.DisplayName())
	require.Equal(t, "ada@example.com", p.Email())

	for _, in := range []string{``, `null`, `[1,2]`, `{"broken"`, `"text"`} {
		_, err := DecodeProfile([]byte(in))
		require.Error(t, err, in)
	}
}

func TestIDString(t *testing.T) {
	t.Parallel()
	require.Equal(t, "12", IDString(float64(12)))
	require.Equal(t, "abc", IDString("abc"))
	require.Equal(t, "n1", IDString(map[string]any{"id": "n1"}))
	require.Equal(t, "", IDString(nil))
}

package value

import "testing"

func TestAdd(t *testing.T) {
	tests := []struct {
		name    string
		l, r    Value
		want    string
		wantErr bool
	}{
		{"int+int", Int{Val: 2}, Int{Val: 3}, "5", false},
		{"int+float promotes", Int{Val: 2}, Float{Val: 1.5}, "3.5", false},
		{"string+string", Str{Val: "a"}, Str{Val: "b"}, "ab", false},
		{"string+int stringifies", Str{Val: "x"}, Int{Val: 1}, "x1", false},
		{"int+string stringifies", Int{Val: 1}, Str{Val: "x"}, "1x", false},
		{"bool+bool fails", Bool{Val: true}, Bool{Val: false}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Add(tt.l, tt.r)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Add(%v, %v) error = %v, wantErr %v", tt.l, tt.r, err, tt.wantErr)
			}
			if err == nil && got.Display() != tt.want {
				t.Errorf("Add(%v, %v) = %s, want %s", tt.l, tt.r, got.Display(), tt.want)
			}
		})
	}
}

func TestDivByZero(t *testing.T) {
	if _, err := Div(Int{Val: 1}, Int{Val: 0}); err == nil {
		t.Fatal("expected division-by-zero error")
	}
}

func TestDivPromotesOnFloat(t *testing.T) {
	got, err := Div(Int{Val: 7}, Float{Val: 2})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got.(Float); !ok {
		t.Errorf("expected Float result, got %T", got)
	}
}

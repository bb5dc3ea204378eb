package format

import "testing"

func TestStyleFormatter(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		// Already-canonical declarations are unchanged.
		{"fn main() -> Option<i32> {}", "fn main() -> Option<i32> {}"},
		{"fn main() -> &str {}", "fn main() -> &str {}"},
		{"fn main() -> Box<dyn Debug + Send> {}", "fn main() -> Box<dyn Debug + Send> {}"},

		// Arbitrary whitespace collapses to canonical spacing.
		{"fn main() ->  std :: vec :: Vec < i32 >  {}", "fn main() -> std::vec::Vec<i32> {}"},
		{"fn main()->HashMap<String,Vec<i32>>{}", "fn main() -> HashMap<String, Vec<i32>> {}"},
		{"&  'a   mut str", "&'a mut str"},
		{"* const * mut i32", "*const *mut i32"},
		{"[ i32 ; 5 ]", "[i32; 5]"},
		{"( i32 , )", "(i32,)"},
		{"extern  \"C\"  fn ( i32 ) -> i32", "extern \"C\" fn(i32) -> i32"},
		{"dyn Debug+Send+'static", "dyn Debug + Send + 'static"},
		{"impl Iterator<Item=i32>", "impl Iterator<Item = i32>"},
		{"fn main() -> () {}", "fn main() -> () {}"},
		{"fn main() -> ! {}", "fn main() -> ! {}"},
		{"fn main() -> _ {}", "fn main() -> _ {}"},
	}

	formatter := StyleFormatter{}

	for _, test := range tests {
		got, err := formatter.Format(test.src)
		if err != nil {
			t.Errorf("failed to format `%s`: %s", test.src, err)
			continue
		}

		if got != test.want {
			t.Errorf("Format(`%s`) = `%s`, want `%s`", test.src, got, test.want)
		}
	}
}

func TestStyleFormatterErrors(t *testing.T) {
	formatter := StyleFormatter{}

	// A fragment that cannot be tokenized must fail, not panic: the caller
	// substitutes the sentinel name.
	if _, err := formatter.Format("fn main() -> % {}"); err == nil {
		t.Error("expected an unknown rune to fail formatting")
	}

	if _, err := formatter.Format("fn main() -> \"unclosed {}"); err == nil {
		t.Error("expected an unclosed string to fail formatting")
	}
}

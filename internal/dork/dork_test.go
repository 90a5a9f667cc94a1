package dork

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categoryIDs(cats []Category) []string {
	ids := make([]string, len(cats))
	for i, c := range cats {
		ids[i] = c.ID
	}
	return ids
}

func allDorks(cats []Category) []Dork {
	var out []Dork
	for _, c := range cats {
		out = append(out, c.Dorks...)
	}
	return out
}

func queryOf(t *testing.T, cats []Category, id string) string {
	t.Helper()
	d, ok := Find(cats, id)
	require.True(t, ok, "dork %s not found", id)
	return d.Query
}

// builderOutputs covers every builder with realistic input.
func builderOutputs() map[string][]Category {
	return map[string][]Category{
		"instagram": Instagram("@john.doe"),
		"x":         X("jdoe_99"),
		"person":    Person("John", "Doe", PersonOptions{Variations: true}),
		"linkedin":  LinkedIn("Jane Smith", LinkedInOptions{Company: "Acme Corp", Country: "Germany"}),
		"email":     Email("user@example.com"),
	}
}

func TestHandleBuildersContainHandle(t *testing.T) {
	handles := []string{"john", "@john", "  john.doe  ", "a_b", "@ spaced "}
	builders := map[string]func(string) []Category{"instagram": Instagram, "x": X}

	for name, build := range builders {
		for _, raw := range handles {
			h := NormalizeHandle(raw)
			cats := build(raw)
			if len(cats) == 0 {
				t.Fatalf("%s(%q): expected categories, got none", name, raw)
			}
			for _, c := range cats {
				if len(c.Dorks) == 0 {
					t.Errorf("%s(%q): category %s has no dorks", name, raw, c.ID)
				}
				for _, d := range c.Dorks {
					if !strings.Contains(d.Query, h) {
						t.Errorf("%s(%q): dork %s query %q does not contain %q", name, raw, d.ID, d.Query, h)
					}
				}
			}
		}
	}
}

func TestHandleBuildersBlank(t *testing.T) {
	for _, raw := range []string{"", "   ", "@", " @ ", "\t@\n"} {
		if got := Instagram(raw); len(got) != 0 {
			t.Errorf("Instagram(%q) = %d categories, want 0", raw, len(got))
		}
		if got := X(raw); len(got) != 0 {
			t.Errorf("X(%q) = %d categories, want 0", raw, len(got))
		}
	}
}

func TestNormalizeHandle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"john", "john"},
		{"@john", "john"},
		{"  @john  ", "john"},
		{"@@john", "@john"},
		{"jo@hn", "jo@hn"},
		{"@", ""},
	}
	for _, tt := range tests {
		if got := NormalizeHandle(tt.input); got != tt.want {
			t.Errorf("NormalizeHandle(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestInstagramShape(t *testing.T) {
	cats := Instagram("john")
	assert.Equal(t, []string{"platform", "external", "tagged", "broad"}, categoryIDs(cats))
	assert.Equal(t, 19, Count(cats))

	assert.Equal(t, `site:instagram.com intext:"john"`, queryOf(t, cats, "i1"))
	assert.Equal(t, `cache:https://www.instagram.com/john`, queryOf(t, cats, "i8"))
	assert.Equal(t, `"@john" -site:instagram.com`, queryOf(t, cats, "e1"))
	assert.Equal(t, `("john" OR "@john") (site:youtube.com/watch OR site:vimeo.com OR site:dailymotion.com)`, queryOf(t, cats, "b2"))

	i8, _ := Find(cats, "i8")
	assert.Equal(t, Yandex, i8.Engine)
	i9, _ := Find(cats, "i9")
	assert.Equal(t, Bing, i9.Engine)
}

func TestXShape(t *testing.T) {
	cats := X("@jack")
	assert.Equal(t, []string{"x_platform", "x_content", "x_external"}, categoryIDs(cats))
	assert.Equal(t, 9, Count(cats))
	assert.Equal(t, `site:twitter.com "RT @jack"`, queryOf(t, cats, "xc2"))
	assert.Equal(t, `cache:twitter.com/jack`, queryOf(t, cats, "x4"))
}

func TestHandleShapeIndependentOfInput(t *testing.T) {
	a := Instagram("a")
	b := Instagram("a much longer handle with spaces")
	require.Equal(t, categoryIDs(a), categoryIDs(b))
	for i := range a {
		assert.Equal(t, len(a[i].Dorks), len(b[i].Dorks), "category %s", a[i].ID)
	}
}

func TestPersonVariations(t *testing.T) {
	without := Person("John", "Doe", PersonOptions{Variations: false})
	for _, c := range without {
		if c.ID == "variations" {
			t.Fatal("variations category present with Variations=false")
		}
	}

	with := Person("John", "Doe", PersonOptions{Variations: true, Transliterate: true})
	last := with[len(with)-1]
	require.Equal(t, "variations", last.ID)
	require.Len(t, last.Dorks, 1)
	assert.Equal(t, `"J Doe"`, last.Dorks[0].Query)
	assert.Len(t, with, len(without)+1)
}

func TestPersonVariationsDoesNotMutateCatalog(t *testing.T) {
	_ = Person("John", "Doe", PersonOptions{Variations: true})
	got := Person("John", "Doe", PersonOptions{})
	assert.NotContains(t, categoryIDs(got), "variations")
	assert.Len(t, personCatalog, 5)
}

func TestPersonTransliterateIsInert(t *testing.T) {
	a := Person("John", "Doe", PersonOptions{Variations: true})
	b := Person("John", "Doe", PersonOptions{Variations: true, Transliterate: true})
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("Transliterate changed output (-off +on):\n%s", diff)
	}
}

func TestPersonRequiresBothNames(t *testing.T) {
	tests := []struct{ first, last string }{
		{"", "Doe"},
		{"John", ""},
		{"   ", "Doe"},
		{"John", "\t"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Person(tt.first, tt.last, PersonOptions{Variations: true}); len(got) != 0 {
			t.Errorf("Person(%q, %q) = %d categories, want 0", tt.first, tt.last, len(got))
		}
	}
}

func TestPersonDerivedForms(t *testing.T) {
	cats := Person("  John ", " Doe ", PersonOptions{})
	assert.Equal(t, `"John Doe"`, queryOf(t, cats, "p1"))
	assert.Equal(t, `"Doe John"`, queryOf(t, cats, "p2"))
	assert.Equal(t, `"John * Doe"`, queryOf(t, cats, "p3"))
	assert.Equal(t, `"JohnDoe" OR "DoeJohn"`, queryOf(t, cats, "h1"))
	assert.Equal(t, `"John_Doe"`, queryOf(t, cats, "h2"))
	assert.Equal(t, `"JDoe"`, queryOf(t, cats, "h3"))
	assert.Equal(t, `"John Doe" filetype:pdf`, queryOf(t, cats, "f1"))

	for _, d := range allDorks(cats) {
		assert.Contains(t, d.Query, "Doe", "dork %s", d.ID)
	}
}

func TestPersonUnicodeInitial(t *testing.T) {
	cats := Person("Émile", "Zola", PersonOptions{Variations: true})
	assert.Equal(t, `"É Zola"`, queryOf(t, cats, "v1"))
	assert.Equal(t, `"ÉZola"`, queryOf(t, cats, "h3"))
}

func TestLinkedInCompany(t *testing.T) {
	cats := LinkedIn("Jane Smith", LinkedInOptions{Company: "Acme Corp"})
	assert.Equal(t, `site:linkedin.com/in "Jane Smith" "Acme Corp"`, queryOf(t, cats, "li1"))
	assert.Equal(t, `"Jane Smith" site:linkedin.com "Acme Corp"`, queryOf(t, cats, "lie1"))
}

func TestLinkedInWithoutQualifiers(t *testing.T) {
	for _, opts := range []LinkedInOptions{{}, {Company: "   ", Country: ""}} {
		cats := LinkedIn("Jane Smith", opts)
		assert.Equal(t, `site:linkedin.com/in "Jane Smith"`, queryOf(t, cats, "li1"))
		assert.Equal(t, `"Jane Smith" site:linkedin.com`, queryOf(t, cats, "lie1"))
		for _, d := range allDorks(cats) {
			assert.NotContains(t, d.Query, `""`, "dork %s", d.ID)
		}
	}
}

func TestLinkedInCountry(t *testing.T) {
	cats := LinkedIn("Jane Smith", LinkedInOptions{Company: "Acme Corp", Country: "Germany"})
	assert.Equal(t, `site:linkedin.com/in "Jane Smith" "Acme Corp" "Germany"`, queryOf(t, cats, "li1"))

	cats = LinkedIn("Jane Smith", LinkedInOptions{Country: "Germany"})
	assert.Equal(t, `site:linkedin.com/in "Jane Smith" "Germany"`, queryOf(t, cats, "li1"))
}

func TestLinkedInSlug(t *testing.T) {
	cats := LinkedIn("  Jane   van  Smith ", LinkedInOptions{})
	assert.Equal(t, `cache:linkedin.com/in/Jane-van-Smith`, queryOf(t, cats, "li3"))
	assert.Equal(t, `site:linkedin.com/pub "Jane   van  Smith"`, queryOf(t, cats, "li2"))
}

func TestLinkedInBlank(t *testing.T) {
	for _, name := range []string{"", "  ", "\n"} {
		if got := LinkedIn(name, LinkedInOptions{Company: "Acme"}); len(got) != 0 {
			t.Errorf("LinkedIn(%q) = %d categories, want 0", name, len(got))
		}
	}
}

func TestEmailSplitAndPivot(t *testing.T) {
	cats := Email("  user@example.com ")
	require.Equal(t, []string{"em_direct", "em_leaks", "em_social"}, categoryIDs(cats))
	assert.Equal(t, `"user" "example"`, queryOf(t, cats, "ems1"))
	assert.Equal(t, `"user@example.com" -site:example.com`, queryOf(t, cats, "em2"))
	assert.Equal(t, `"user@example.com" filetype:log`, queryOf(t, cats, "eml2"))
}

func TestEmailMultiLabelDomain(t *testing.T) {
	cats := Email("a@mail.corp.example.com")
	assert.Equal(t, `"a" "mail"`, queryOf(t, cats, "ems1"))
}

func TestSplitEmail(t *testing.T) {
	tests := []struct {
		input, local, domain string
		ok                   bool
	}{
		{"user@example.com", "user", "example.com", true},
		{"a@b@c.com", "a", "b@c.com", true},
		{"no-at-sign", "", "", false},
		{"", "", "", false},
		{"@example.com", "", "", false},
		{"user@", "", "", false},
		{"@", "", "", false},
	}
	for _, tt := range tests {
		local, domain, ok := SplitEmail(tt.input)
		if local != tt.local || domain != tt.domain || ok != tt.ok {
			t.Errorf("SplitEmail(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.input, local, domain, ok, tt.local, tt.domain, tt.ok)
		}
	}
}

func TestDomainLabel(t *testing.T) {
	tests := []struct{ input, want string }{
		{"example.com", "example"},
		{"corp.example.com", "corp"},
		{"localhost", "localhost"},
		{".com", ".com"},
	}
	for _, tt := range tests {
		if got := DomainLabel(tt.input); got != tt.want {
			t.Errorf("DomainLabel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestEmailDegenerate(t *testing.T) {
	for _, e := range []string{"no-at-sign", "", "   ", "@", "@example.com", "user@"} {
		if got := Email(e); len(got) != 0 {
			t.Errorf("Email(%q) = %d categories, want 0", e, len(got))
		}
	}
}

func TestEmailContainsAddress(t *testing.T) {
	cats := Email("user@example.com")
	for _, d := range allDorks(cats) {
		if d.ID == "ems1" {
			assert.Contains(t, d.Query, `"user"`)
			continue
		}
		assert.Contains(t, d.Query, "user@example.com", "dork %s", d.ID)
	}
}

func TestBuildersIdempotent(t *testing.T) {
	first := builderOutputs()
	second := builderOutputs()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("builders not deterministic (-first +second):\n%s", diff)
	}
}

func TestBuildersConcurrent(t *testing.T) {
	baseline := builderOutputs()
	plain := Person("John", "Doe", PersonOptions{})

	const workers, rounds = 16, 25
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				// Mix variations on and off across goroutines.
				if (w+i)%2 == 0 {
					if diff := cmp.Diff(plain, Person("John", "Doe", PersonOptions{})); diff != "" {
						t.Errorf("person without variations (-want +got):\n%s", diff)
						return
					}
					continue
				}
				if diff := cmp.Diff(baseline, builderOutputs()); diff != "" {
					t.Errorf("concurrent builders diverged (-want +got):\n%s", diff)
					return
				}
			}
		}(w)
	}
	wg.Wait()
	assert.Len(t, personCatalog, 5)
}

func TestBuilderInvariants(t *testing.T) {
	for name, cats := range builderOutputs() {
		require.NotEmpty(t, cats, name)
		seen := make(map[string]bool)
		for _, c := range cats {
			assert.NotEmpty(t, c.ID, name)
			assert.NotEmpty(t, c.Title, name)
			assert.NotEmpty(t, c.Explanation, name)
			assert.NotEmpty(t, c.Dorks, "%s/%s", name, c.ID)
			for _, d := range c.Dorks {
				assert.False(t, seen[d.ID], "%s: duplicate dork id %s", name, d.ID)
				seen[d.ID] = true
				assert.NotEmpty(t, d.Query, "%s/%s", name, d.ID)
				assert.NotEmpty(t, d.Title, "%s/%s", name, d.ID)
				assert.NotEmpty(t, d.Description, "%s/%s", name, d.ID)
				assert.True(t, d.Engine.Valid(), "%s/%s engine %q", name, d.ID, d.Engine)
				assert.NotContains(t, d.Query, "{", "%s/%s unexpanded placeholder", name, d.ID)
				assert.NotContains(t, d.Query, `""`, "%s/%s empty phrase", name, d.ID)
			}
		}
	}
}

func TestPlaceholderLookalikeInputIsLiteral(t *testing.T) {
	cats := Instagram("{email}")
	assert.Equal(t, `site:instagram.com intext:"{email}"`, queryOf(t, cats, "i1"))

	cats = LinkedIn("{qualifiers}", LinkedInOptions{Company: "Acme"})
	assert.Equal(t, `site:linkedin.com/in "{qualifiers}" "Acme"`, queryOf(t, cats, "li1"))
}

func TestOddInputDoesNotPanic(t *testing.T) {
	odd := []string{"\x00", "\xff\xfe", `"quoted"`, "a\"b", "日本語", "@@@", "a@b@c", strings.Repeat("x", 10000)}
	for _, s := range odd {
		assert.NotPanics(t, func() {
			Instagram(s)
			X(s)
			Person(s, s, PersonOptions{Variations: true})
			LinkedIn(s, LinkedInOptions{Company: s, Country: s})
			Email(s)
		}, "input %q", s)
	}
}

func TestFilterAndFind(t *testing.T) {
	cats := Instagram("john")
	got := Filter(cats, "broad", "tagged")
	assert.Equal(t, []string{"tagged", "broad"}, categoryIDs(got))
	assert.Equal(t, cats, Filter(cats))

	_, ok := Find(cats, "nope")
	assert.False(t, ok)
}

func TestParseEngine(t *testing.T) {
	tests := []struct {
		input string
		want  Engine
		err   bool
	}{
		{"Google", Google, false},
		{"bing", Bing, false},
		{" YANDEX ", Yandex, false},
		{"Multi-Engine", Multi, false},
		{"all", Multi, false},
		{"duckduckgo", "", true},
	}
	for _, tt := range tests {
		got, err := ParseEngine(tt.input)
		if tt.err {
			if err == nil {
				t.Errorf("ParseEngine(%q): expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseEngine(%q) = %v, %v, want %v", tt.input, got, err, tt.want)
		}
	}
}

func TestGenerate(t *testing.T) {
	in := Input{
		Handle:    "@john",
		FirstName: "John",
		LastName:  "Doe",
		Name:      "Jane Smith",
		Email:     "user@example.com",
		Person:    PersonOptions{Variations: true},
		LinkedIn:  LinkedInOptions{Company: "Acme Corp"},
	}
	want := map[Kind][]Category{
		KindInstagram: Instagram("@john"),
		KindX:         X("@john"),
		KindPerson:    Person("John", "Doe", PersonOptions{Variations: true}),
		KindLinkedIn:  LinkedIn("Jane Smith", LinkedInOptions{Company: "Acme Corp"}),
		KindEmail:     Email("user@example.com"),
	}
	for _, k := range Kinds() {
		got, err := Generate(k, in)
		require.NoError(t, err, k)
		if diff := cmp.Diff(want[k], got); diff != "" {
			t.Errorf("Generate(%s) mismatch (-want +got):\n%s", k, diff)
		}
	}

	_, err := Generate(Kind("myspace"), in)
	assert.True(t, errors.Is(err, ErrUnknownKind))
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("Twitter")
	require.NoError(t, err)
	assert.Equal(t, KindX, k)

	k, err = ParseKind(" email ")
	require.NoError(t, err)
	assert.Equal(t, KindEmail, k)

	_, err = ParseKind("fax")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

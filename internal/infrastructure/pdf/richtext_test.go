package pdf

import (
	"reflect"
	"testing"
)

func TestParseRichText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Run
	}{
		{
			name:  "plain paragraph",
			input: "<p>Oil filter</p>",
			want:  []Run{{Text: "Oil filter"}},
		},
		{
			name:  "bold fragment",
			input: "<p>Replace <strong>both</strong> pads</p>",
			want: []Run{
				{Text: "Replace "},
				{Text: "both", Bold: true},
				{Text: " pads"},
			},
		},
		{
			name:  "nested styles",
			input: "<p><b>Front</b> axle <em><u>urgent</u></em></p>",
			want: []Run{
				{Text: "Front", Bold: true},
				{Text: " axle "},
				{Text: "urgent", Italic: true, Underline: true},
			},
		},
		{
			name:  "paragraphs and br produce line breaks",
			input: "<p>Line one</p><p>Line two<br>Line three</p>",
			want: []Run{
				{Text: "Line one"},
				{Text: "\n"},
				{Text: "Line two"},
				{Text: "\n"},
				{Text: "Line three"},
			},
		},
		{
			name:  "self closing br",
			input: "<p>a<br/>b</p>",
			want:  []Run{{Text: "a"}, {Text: "\n"}, {Text: "b"}},
		},
		{
			name:  "unknown tags stripped",
			input: `<p><span class="hl">Filter</span> <div>set</div></p>`,
			want:  []Run{{Text: "Filter set"}},
		},
		{
			name:  "unclosed style tag runs to the end",
			input: "<p>Note: <strong>important</p>",
			want: []Run{
				{Text: "Note: "},
				{Text: "important", Bold: true},
			},
		},
		{
			name:  "lone angle bracket kept as text",
			input: "<p>torque < 40 Nm",
			want:  []Run{{Text: "torque < 40 Nm"}},
		},
		{
			name:  "entities decoded",
			input: "<p>Bolts &amp; nuts&nbsp;&lt;M8&gt; &quot;origin&quot; &#39;OEM&#39;</p>",
			want:  []Run{{Text: `Bolts & nuts <M8> "origin" 'OEM'`}},
		},
		{
			name:  "trailing breaks trimmed",
			input: "<p>Only line</p><p></p><br>",
			want:  []Run{{Text: "Only line"}},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "bare text without markup",
			input: "No markup at all",
			want:  []Run{{Text: "No markup at all"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseRichText(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseRichText(%q)\n got %#v\nwant %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPlainText(t *testing.T) {
	runs := ParseRichText("<p>Line one</p><p><b>Line</b> two</p>")
	if got := PlainText(runs); got != "Line one\nLine two" {
		t.Errorf("PlainText() = %q", got)
	}
}

package pdftest

// FieldReport is a two page document: a centered title, a heading wrapped
// over two lines, body paragraphs, a bold running header inside the top
// margin of page 2 and a page footer inside the bottom margin.
func FieldReport() [][]Text {
	body := func(s string, y float64) Text {
		return Text{S: s, Size: 10, X: 72, Y: y}
	}
	heading := func(s string, y float64) Text {
		return Text{S: s, Size: 16, X: 72, Y: y, Bold: true}
	}

	page1 := []Text{
		{S: "Acme Survey Group Draft", Size: 10, X: 72, Y: 770},
		{S: "Annual Field Report", Size: 24, X: 200, Y: 700, Bold: true},
		heading("Results and ", 600),
		heading("Discussion", 582),
		body("The survey covered twelve sites in the region.", 540),
		body("Each site was visited twice during the season.", 527),
		body("Counts were recorded on paper and typed later.", 514),
		heading("Methods Used", 470),
		body("Observers walked fixed transects at dawn.", 430),
		body("Weather was logged at the start of every walk.", 417),
	}

	page2 := []Text{
		heading("Field Report Continued", 760),
		heading("Regional Summary", 700),
		body("The northern sites reported the highest counts.", 660),
		body("Southern sites were flooded for most of May.", 647),
		{S: "Page 2 of 2", Size: 10, X: 290, Y: 30},
	}

	return [][]Text{page1, page2}
}

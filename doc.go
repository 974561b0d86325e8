// Package ui renders typed UI elements to safe HTML.
//
// Plain elements are built from a tag, attributes and content:
//
//	link := ui.NewHTML("a", element.WithContent("Docs"))
//	link.Set("href", "/docs")
//
// Templated elements take their content from a template resolved for their
// type. Configure wires a type manifest and a pongo2 loader as the defaults:
//
//	if _, _, err := ui.Configure(os.DirFS("views"), "ui.yaml"); err != nil {
//		return err
//	}
//	card := ui.NewTemplated("div", ui.Identity{Name: "widgets.Card"})
//	fmt.Println(card)
//
// Rendering never emits a javascript: href, and String always returns
// escaped markup, falling back to the escaped error message.
package ui

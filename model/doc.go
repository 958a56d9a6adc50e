// Package model provides the data structures returned by extraction.
//
// A [Document] holds the plain text of an HTML document, its [Metadata]
// (title, author, description, subject, keywords and declared charset) and
// the [Link] values found in it, each resolved to an absolute URL:
//
//	doc := model.NewDocument()
//	doc.Metadata.Title = "My Document"
//	doc.AddLink(model.Link{URL: "http://a.com/x.html", Kind: links.Normal})
//
// Keywords are kept as written; [Metadata.KeywordList] splits them.
package model

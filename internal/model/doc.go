// Package model defines the core data structures used throughout
// imgur-grabber.
//
// # Album
//
// Album is one album link together with the direct image URLs pulled from
// its page and how long the fetch took:
//
//	album := model.NewAlbum("https://imgur.com/a/Xk3fQ9z", "https://imgur.com/a/")
//	album.ID      // "Xk3fQ9z"
//	album.Images  // filled in by the grab manager
//
// # AmendResult
//
// AmendResult describes one run of the file amender: which file was read,
// which file was written and how many lines it holds.
package model

/*
Package dom provides the lightweight document object model that ad surfaces
render into.

# Overview

The model is intentionally small: a Document owns a tree of Elements, each
carrying a tag name, id, class list, attributes, inline style, text, and
children. It supports the operations the rendering surfaces need:

  - Element creation, attachment, and detachment
  - Attribute, class, and inline-style manipulation
  - Event listeners with synchronous dispatch (load, error, resize)
  - Content-box measurement against the document viewport
  - HTML fragment parsing (goquery) and serialization

# Concurrency

A Document guards its whole tree with one RWMutex. Elements always belong to
exactly one Document and route every mutation and query through that lock.
Event listeners are invoked outside the lock, so a listener may freely call
back into the tree.

# Measurement

ContentBox resolves an element's width and height in integral device
independent pixels. Pixel lengths resolve directly, percentages resolve
against the nearest ancestor with a resolvable length, and the root falls
back to the document viewport.
*/
package dom

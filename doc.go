/*
Package adsurface manages video-advertisement rendering surfaces.

# Overview

A surface is mounted into a caller-supplied placeholder element and renders
a video element for ad playback. Two variants implement the same contract:

  - Container renders the video element directly in the host document.
  - SecureContainer renders it inside an isolated sub-document backed by its
    own JavaScript runtime, so ad-vendor scripts cannot reach the host
    page's DOM or globals.

# Lifecycle

Construction validates the placeholder and synchronously attaches the
host-visible element. The secure variant then completes setup
asynchronously: the embedded frame loads, the video element is created
inside it, an initial size synchronization runs, and a resize subscription
is installed. Callers await Ready before injecting scripts or relying on
measured size:

	c, err := adsurface.NewSecure(placeholder, adsurface.Options{})
	if err != nil {
		return err
	}
	if err := c.Ready(ctx); err != nil {
		return err
	}
	script, err := c.AddScript(ctx, "https://vendor.example/ad.js", nil)

Destroy tears the surface down at any point. It detaches the host-visible
element, closes the embedded frame, and is terminal: every operation except
Destroyed, Destroy, and the accessors fails afterwards with an error
wrapping ErrDestroyed.

# Containment

The secure variant's frame owns a private document and VM. Scripts loaded
through AddScript execute only against that frame; the host document is
never visible to them. This is a structural boundary for well-behaved
embedding, not an OS-enforced security sandbox.
*/
package adsurface

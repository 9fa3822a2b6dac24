/*
Package sandbox provides the isolated rendering context backing a secure ad
surface.

Each Frame owns one goja JavaScript VM and one dom.Document. The VM's global
scope is the frame's "window"; it can reach the frame document but nothing
from the host page. Node.js globals are removed and timers are no-ops, so
ad-vendor scripts are limited to the surface the frame exposes:

  - window, document (frame document only)
  - console, routed to the injected logger
  - document query and write helpers over the frame's DOM

A Frame is created once per secure container and closed exactly once when
the container is destroyed.
*/
package sandbox

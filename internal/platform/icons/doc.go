// Package icons lists the Lucide icons the archive portal renders.
//
// Names are Lucide icon names; templates reference them through the sprite
// symbol ID so the markup does not depend on how the sprite is served.
package icons

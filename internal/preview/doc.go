// Package preview implements the interactive stage of a run.
//
// A Picker hands the result set to fzf, which calls back into the imgscan
// binary for every highlighted entry through a preview command. The
// Previewer behind that command fetches the image bytes (cached in the
// run's scratch directory), renders a thumbnail with a Renderer and adds a
// short EXIF summary. Two renderers exist: ChafaRenderer delegates to the
// chafa binary and BlockRenderer draws ANSI half blocks itself.
package preview

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package desktop

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gogpu/yengine/platform"
)

var errEmptySurface = errors.New("desktop: pixel surface size must be non-zero")

var (
	glOnce sync.Once
	glErr  error
)

// Full-window quad from gl_VertexID; image row 0 lands at the top.
const blitVertSrc = `#version 410 core

out vec2 vUV;

void main() {
    vec2 pos = vec2(float(gl_VertexID & 1), float((gl_VertexID >> 1) & 1));
    vUV = vec2(pos.x, 1.0 - pos.y);
    gl_Position = vec4(pos * 2.0 - 1.0, 0.0, 1.0);
}
` + "\x00"

const blitFragSrc = `#version 410 core

uniform sampler2D uTex;

in vec2 vUV;
out vec4 FragColor;

void main() {
    FragColor = texture(uTex, vUV);
}
` + "\x00"

// pixelSurface uploads its buffer to a texture and draws it over the
// whole framebuffer of its window.
type pixelSurface struct {
	w      *window
	size   platform.Size
	buf    []uint32
	prog   uint32
	vao    uint32
	tex    uint32
	texDim platform.Size
}

func newPixelSurface(w *window) (*pixelSurface, error) {
	w.win.MakeContextCurrent()
	glOnce.Do(func() { glErr = gl.Init() })
	if glErr != nil {
		return nil, fmt.Errorf("desktop: gl init: %w", glErr)
	}

	prog, err := linkProgram(blitVertSrc, blitFragSrc)
	if err != nil {
		return nil, fmt.Errorf("desktop: %w", err)
	}
	s := &pixelSurface{w: w, prog: prog}
	gl.GenVertexArrays(1, &s.vao)
	gl.GenTextures(1, &s.tex)
	gl.BindTexture(gl.TEXTURE_2D, s.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.UseProgram(prog)
	gl.Uniform1i(gl.GetUniformLocation(prog, gl.Str("uTex\x00")), 0)
	return s, nil
}

func (s *pixelSurface) Resize(width, height uint32) error {
	if width == 0 || height == 0 {
		return errEmptySurface
	}
	n := int(width) * int(height)
	if cap(s.buf) >= n {
		s.buf = s.buf[:n]
	} else {
		s.buf = make([]uint32, n)
	}
	s.size = platform.Size{Width: width, Height: height}
	return nil
}

func (s *pixelSurface) Size() platform.Size { return s.size }

func (s *pixelSurface) Buffer() []uint32 { return s.buf }

func (s *pixelSurface) Present() error {
	if s.size.Empty() {
		return errEmptySurface
	}
	if s.w.win == nil {
		return errForeignWindow
	}
	s.w.win.MakeContextCurrent()

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, s.tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	if s.texDim != s.size {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(s.size.Width), int32(s.size.Height),
			0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(s.buf))
		s.texDim = s.size
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(s.size.Width), int32(s.size.Height),
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(s.buf))
	}

	fb := s.w.InnerSize()
	gl.Viewport(0, 0, int32(fb.Width), int32(fb.Height))
	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.UseProgram(s.prog)
	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)

	s.w.win.SwapBuffers()
	return nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}

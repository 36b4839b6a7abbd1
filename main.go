package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"runtime"

	"github.com/braheezy/phong-sphere/phong"
	"github.com/braheezy/phong-sphere/sphere"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	initialWindowWidth  = 512
	initialWindowHeight = 512
	windowTitle         = "OpenGL Phong Shader"
)

var (
	sphereWidth     = flag.Int("width", sphere.DefaultWidth, "longitude divisions of the sphere")
	sphereHeight    = flag.Int("height", sphere.DefaultHeight, "latitude divisions of the sphere")
	enableWireframe = flag.Bool("wireframe", false, "draw triangle edges only")
	exportPath      = flag.String("export", "", "write the sphere to this OBJ file and exit")
	shaderDir       = flag.String("shaders", "shaders", "directory holding phong.vs and phong.fs")
)

func init() {
	// This is needed to arrange that main() runs on main thread.
	runtime.LockOSThread()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("phong: ")
	flag.Parse()

	var err error
	if *exportPath != "" {
		err = export(*exportPath)
	} else {
		err = run()
	}
	if err != nil {
		log.Fatal(err)
	}
}

// export writes the generated sphere without opening a window.
func export(path string) error {
	var scene sphere.Scene
	if err := scene.Create(*sphereWidth, *sphereHeight); err != nil {
		return fmt.Errorf("failed to create scene geometry: %w", err)
	}
	defer scene.Delete()

	if err := scene.Mesh().SaveOBJ(path); err != nil {
		return err
	}
	log.Printf("wrote %d vertices, %d triangles to %s", scene.Mesh().VertexCount(), scene.Mesh().TriangleCount(), path)
	return nil
}

func run() error {
	/*
	 * GLFW init and configure
	 */
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	// Free resources used by GLFW when the program exits.
	defer glfw.Terminate()
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	// Required on macOS for a core profile context.
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	/*
	 * GLFW window creation
	 */
	window, err := glfw.CreateWindow(initialWindowWidth, initialWindowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create GLFW window: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()
	window.SetFramebufferSizeCallback(framebufferSizeCallback)

	/*
	 * Load OS-specific OpenGL function pointers
	 */
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	/*
	 * Build the sphere geometry
	 */
	var scene sphere.Scene
	if err := scene.Create(*sphereWidth, *sphereHeight); err != nil {
		return fmt.Errorf("failed to create scene geometry: %w", err)
	}
	defer scene.Delete()

	/*
	 * Build and compile our shader program
	 */
	shaderProgram, err := NewShader(filepath.Join(*shaderDir, "phong.vs"), filepath.Join(*shaderDir, "phong.fs"))
	if err != nil {
		return err
	}
	defer shaderProgram.delete()

	/*
	 * Upload vertex and index data
	 */
	mesh, err := NewSphereMesh(scene.Mesh())
	if err != nil {
		return fmt.Errorf("failed to upload scene geometry: %w", err)
	}
	defer mesh.Delete()

	uniforms := phong.Default()

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	if *enableWireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}

	// Run the render loop until the window is closed by the user.
	for !window.ShouldClose() {
		processInput(window)

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		uniforms.Apply(shaderProgram.use())
		mesh.Draw()

		window.SwapBuffers()
		glfw.PollEvents()
	}

	return nil
}

// framebufferSizeCallback is called when the gl viewport is resized.
func framebufferSizeCallback(w *glfw.Window, width int, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// processInput handles key presses.
func processInput(w *glfw.Window) {
	if w.GetKey(glfw.KeyEscape) == glfw.Press {
		w.SetShouldClose(true)
	}
}

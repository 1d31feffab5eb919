/*
	opengl helpers

	window (glfw context, input, buffer swap)
	program (vertex + fragment shader, compile and link status)
	mesh (vertex array, vertex buffer, attribute layout)
	renderer (clear, bind program, draw)

	every function calling into gl or glfw must run on the
	thread that created the window.
*/
package engine

package project

// DefaultLibName is the macOS dylib the generated Lazarus projects link against
const DefaultLibName = "libraylib.420.dylib"

// Samples is the built-in list of example programs. The position of an entry
// is its sequence index and ends up in the Delphi project GUID, so inserting
// an entry renumbers everything after it.
var Samples = []Descriptor{
	// core
	{Path: "core/core_2d_camera"},
	{Path: "core/core_2d_camera_mouse_zoom"},
	{Path: "core/core_2d_camera_platformer"},
	{Path: "core/core_3d_camera_first_person"},
	{Path: "core/core_3d_camera_free"},
	{Path: "core/core_3d_camera_mode"},
	{Path: "core/core_3d_picking"},
	{Path: "core/core_basic_screen_manager"},
	{Path: "core/core_basic_window"},
	{Path: "core/core_custom_frame_control"},
	{Path: "core/core_custom_logging"},
	{Path: "core/core_drop_files"},
	{Path: "core/core_input_keys"},
	{Path: "core/core_input_mouse"},
	{Path: "core/core_input_mouse_wheel"},
	{Path: "core/core_loading_thread", Tags: Tags(TagCthreads)},
	{Path: "core/core_random_values"},
	{Path: "core/core_scissor_test"},
	{Path: "core/core_smooth_pixelperfect"},
	{Path: "core/core_split_screen"},
	{Path: "core/core_storage_values"},
	{Path: "core/core_window_flags"},
	{Path: "core/core_window_letterbox"},
	{Path: "core/core_window_should_close"},
	{Path: "core/core_world_screen"},

	// shapes
	{Path: "shapes/shapes_basic_shapes"},
	{Path: "shapes/shapes_bouncing_ball"},
	{Path: "shapes/shapes_collision_area"},
	{Path: "shapes/shapes_colors_palette"},
	{Path: "shapes/shapes_draw_circle_sector"},
	{Path: "shapes/shapes_draw_rectangle_rounded"},
	{Path: "shapes/shapes_draw_ring"},
	{Path: "shapes/shapes_easings_ball_anim", Tags: Tags(TagReasings)},
	{Path: "shapes/shapes_easings_box_anim", Tags: Tags(TagReasings)},
	{Path: "shapes/shapes_easings_rectangle_array", Tags: Tags(TagReasings)},
	{Path: "shapes/shapes_following_eyes"},
	{Path: "shapes/shapes_lines_bezier"},
	{Path: "shapes/shapes_logo_raylib"},
	{Path: "shapes/shapes_logo_raylib_anim"},
	{Path: "shapes/shapes_rectangle_scaling"},
	{Path: "shapes/shapes_top_down_lights"},

	// textures
	{Path: "textures/textures_background_scrolling"},
	{Path: "textures/textures_blend_modes"},
	{Path: "textures/textures_bunnymark"},
	{Path: "textures/textures_draw_tiled"},
	{Path: "textures/textures_image_drawing"},
	{Path: "textures/textures_image_generation"},
	{Path: "textures/textures_image_loading"},
	{Path: "textures/textures_image_processing"},
	{Path: "textures/textures_image_text"},
	{Path: "textures/textures_logo_raylib"},
	{Path: "textures/textures_mouse_painting"},
	{Path: "textures/textures_npatch_drawing"},
	{Path: "textures/textures_particles_blending"},
	{Path: "textures/textures_raw_data"},
	{Path: "textures/textures_sprite_anim"},
	{Path: "textures/textures_sprite_button"},
	{Path: "textures/textures_sprite_explosion"},
	{Path: "textures/textures_srcrec_dstrec"},
	{Path: "textures/textures_to_image"},

	// text
	{Path: "text/text_codepoints_loading"},
	{Path: "text/text_draw_3d"},
	{Path: "text/text_font_filters"},
	{Path: "text/text_font_loading"},
	{Path: "text/text_font_sdf"},
	{Path: "text/text_font_spritefont"},
	{Path: "text/text_format_text"},
	{Path: "text/text_input_box"},
	{Path: "text/text_raylib_fonts"},
	{Path: "text/text_rectangle_bounds"},
	{Path: "text/text_writing_anim"},

	// models
	{Path: "models/models_animation"},
	{Path: "models/models_billboard"},
	{Path: "models/models_box_collisions"},
	{Path: "models/models_cubicmap"},
	{Path: "models/models_first_person_maze"},
	{Path: "models/models_geometric_shapes"},
	{Path: "models/models_heightmap"},
	{Path: "models/models_loading"},
	{Path: "models/models_mesh_generation"},
	{Path: "models/models_mesh_picking"},
	{Path: "models/models_orthographic_projection"},
	{Path: "models/models_rlgl_solar_system"},
	{Path: "models/models_waving_cubes"},
	{Path: "models/models_yaw_pitch_roll"},

	// shaders
	{Path: "shaders/shaders_basic_lighting", Tags: Tags(TagRlights)},
	{Path: "shaders/shaders_custom_uniform"},
	{Path: "shaders/shaders_eratosthenes"},
	{Path: "shaders/shaders_fog", Tags: Tags(TagRlights)},
	{Path: "shaders/shaders_julia_set"},
	{Path: "shaders/shaders_model_shader"},
	{Path: "shaders/shaders_postprocessing"},
	{Path: "shaders/shaders_raymarching"},
	{Path: "shaders/shaders_shapes_textures"},
	{Path: "shaders/shaders_simple_mask"},
	{Path: "shaders/shaders_spotlight"},
	{Path: "shaders/shaders_texture_drawing"},
	{Path: "shaders/shaders_texture_waves"},

	// audio
	{Path: "audio/audio_module_playing"},
	{Path: "audio/audio_music_stream"},
	{Path: "audio/audio_raw_stream"},
	{Path: "audio/audio_sound_loading"},
}
